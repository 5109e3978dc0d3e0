package domain

import "fmt"

type CycleResult string

const (
	ResultSuccess CycleResult = "success"
	ResultRetry   CycleResult = "retry"
)

func PartnerStateKey(partner string) string {
	return fmt.Sprintf("lastPartnerState_%s", partner)
}

func BucketCountKey(partner string) string {
	return fmt.Sprintf("lastBucketCount_%s", partner)
}
