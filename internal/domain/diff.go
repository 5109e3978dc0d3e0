package domain

// NoBucketCount marks a bucket-list count that was never observed.
const NoBucketCount = -1

// DetectChanges compares the partner's current state to the last one that was
// notified for and returns the resulting events in rule order. previous is nil
// on the first cycle. localUser identifies whose balance counts as "received";
// when empty the first balance key that is not the partner is used.
func DetectChanges(partner, localUser string, current PartnerState, previous *PartnerState) []ChangeEvent {
	prev := PartnerState{}
	if previous != nil {
		prev = *previous
	}

	var events []ChangeEvent

	if latest, ok := current.LatestActivity(); ok {
		last, hadLast := prev.LatestActivity()
		if !hadLast || last != latest {
			events = append(events, ChangeEvent{Kind: ChangeActivity, Activity: latest.Type})
		}
	}

	if current.Mood != "" && current.Mood != prev.Mood {
		events = append(events, ChangeEvent{Kind: ChangeMood, Mood: current.Mood})
	}

	if len(current.StudyLogs) > len(prev.StudyLogs) {
		newest := current.StudyLogs[len(current.StudyLogs)-1]
		events = append(events, ChangeEvent{Kind: ChangeStudy, Subject: newest.Subject})
	}

	if current.Game.TotalScore > prev.Game.TotalScore {
		events = append(events, ChangeEvent{Kind: ChangeScore, Score: current.Game.TotalScore})
	}

	if event, ok := couponInventoryChange(partner, current.Coupons, prev.Coupons); ok {
		events = append(events, event)
	}

	if event, ok := pointsReceived(partner, localUser, current.Coupons, prev.Coupons); ok {
		events = append(events, event)
	}

	return events
}

// DetectBucketListChange reports an addition only when a count from an earlier
// cycle exists. One event covers any number of added items.
func DetectBucketListChange(lastCount, currentCount int) (ChangeEvent, bool) {
	if lastCount == NoBucketCount || currentCount <= lastCount {
		return ChangeEvent{}, false
	}

	return ChangeEvent{Kind: ChangeBucketList, Added: currentCount - lastCount}, true
}

func couponInventoryChange(partner string, current, previous Coupons) (ChangeEvent, bool) {
	now, ok := current.InventoryCount(partner)
	if !ok {
		return ChangeEvent{}, false
	}
	before, ok := previous.InventoryCount(partner)
	if !ok {
		return ChangeEvent{}, false
	}

	switch {
	case now < before:
		return ChangeEvent{Kind: ChangeCouponRedeemed}, true
	case now > before:
		return ChangeEvent{Kind: ChangeCouponGranted}, true
	default:
		return ChangeEvent{}, false
	}
}

func pointsReceived(partner, localUser string, current, previous Coupons) (ChangeEvent, bool) {
	user := localUser
	if _, ok := current.Balance(user); user == "" || !ok {
		user = current.OtherBalanceUser(partner)
	}
	if user == "" || user == partner {
		return ChangeEvent{}, false
	}

	now, ok := current.Balance(user)
	if !ok {
		return ChangeEvent{}, false
	}
	before, ok := previous.Balance(user)
	if !ok {
		return ChangeEvent{}, false
	}

	if now <= before {
		return ChangeEvent{}, false
	}

	return ChangeEvent{Kind: ChangePointsReceived, Points: now - before}, true
}
