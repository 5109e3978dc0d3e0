package domain

type ChangeKind string

const (
	ChangeActivity       ChangeKind = "activity"
	ChangeMood           ChangeKind = "mood"
	ChangeStudy          ChangeKind = "study"
	ChangeScore          ChangeKind = "score"
	ChangeCouponRedeemed ChangeKind = "coupon_redeemed"
	ChangeCouponGranted  ChangeKind = "coupon_granted"
	ChangePointsReceived ChangeKind = "points_received"
	ChangeBucketList     ChangeKind = "bucket_list"
)

// ChangeEvent is one classified difference between two partner snapshots.
// Only the fields relevant to Kind are set.
type ChangeEvent struct {
	Kind     ChangeKind
	Activity string
	Mood     string
	Subject  string
	Score    int64
	Points   int64
	Added    int
}
