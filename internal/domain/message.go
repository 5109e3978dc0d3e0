package domain

import "fmt"

const NotificationTitle = "Together Update"

var activityLabels = map[string]string{
	"pooping":      "pooping 💩",
	"eating":       "eating 🍽️",
	"working":      "working 💼",
	"sleeping":     "sleeping 😴",
	"exercising":   "exercising 🏃",
	"thinking":     "thinking of you 💭",
	"shopping":     "shopping 🛍️",
	"watching":     "watching TV 📺",
	"cooking":      "cooking 👩‍🍳",
	"driving":      "driving 🚗",
	"missing":      "missing you 💔",
	"celebrating":  "celebrating 🎉",
	"studying":     "studying 📚",
	"goingout":     "going out 🚶‍♀️",
	"goingoffline": "going offline 🔌",
}

// ActivityLabel falls back to the raw type for unknown activities.
func ActivityLabel(activityType string) string {
	if label, ok := activityLabels[activityType]; ok {
		return label
	}
	return activityType
}

func FormatMessage(partner string, event ChangeEvent) string {
	switch event.Kind {
	case ChangeActivity:
		return fmt.Sprintf("%s is %s", partner, ActivityLabel(event.Activity))
	case ChangeMood:
		return fmt.Sprintf("%s is feeling %s", partner, event.Mood)
	case ChangeStudy:
		if event.Subject != "" {
			return fmt.Sprintf("%s finished studying %s 📚", partner, event.Subject)
		}
		return fmt.Sprintf("%s finished studying! 📚", partner)
	case ChangeScore:
		return fmt.Sprintf("%s is playing games and scored points!", partner)
	case ChangeCouponRedeemed:
		return fmt.Sprintf("%s redeemed a coupon!", partner)
	case ChangeCouponGranted:
		return fmt.Sprintf("%s got a new coupon!", partner)
	case ChangePointsReceived:
		return fmt.Sprintf("%s gave you some points! 💖", partner)
	case ChangeBucketList:
		return fmt.Sprintf("%s added a new item to the bucket list! ✨", partner)
	default:
		return fmt.Sprintf("%s updated something", partner)
	}
}
