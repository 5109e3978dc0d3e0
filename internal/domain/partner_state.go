package domain

import "github.com/tidwall/gjson"

type Activity struct {
	Type      string
	Timestamp string
}

type StudySession struct {
	Subject string
}

type GameData struct {
	TotalScore int64
}

type Balance struct {
	User   string
	Points int64
	Valid  bool
}

type Coupons struct {
	// Inventory maps a participant to the number of coupon tokens they hold.
	Inventory map[string]int
	// Balances keeps the document's key order; the local-user fallback
	// depends on it.
	Balances []Balance
}

func (c Coupons) InventoryCount(user string) (int, bool) {
	count, ok := c.Inventory[user]
	return count, ok
}

func (c Coupons) Balance(user string) (int64, bool) {
	for _, balance := range c.Balances {
		if balance.User == user {
			return balance.Points, balance.Valid
		}
	}
	return 0, false
}

// OtherBalanceUser returns the first balance key that is not partner.
func (c Coupons) OtherBalanceUser(partner string) string {
	for _, balance := range c.Balances {
		if balance.User != partner {
			return balance.User
		}
	}
	return ""
}

type PartnerState struct {
	Activities []Activity
	Mood       string
	StudyLogs  []StudySession
	Game       GameData
	Coupons    Coupons
}

func (s PartnerState) LatestActivity() (Activity, bool) {
	if len(s.Activities) == 0 {
		return Activity{}, false
	}

	latest := s.Activities[len(s.Activities)-1]
	if latest.Type == "" {
		return Activity{}, false
	}
	return latest, true
}

// ParsePartnerState never fails: absent or wrongly typed fields come back as
// their zero value.
func ParsePartnerState(raw string) PartnerState {
	if raw == "" || !gjson.Valid(raw) {
		return PartnerState{}
	}

	doc := gjson.Parse(raw)
	if !doc.IsObject() {
		return PartnerState{}
	}

	state := PartnerState{
		Mood: stringField(doc, "mood"),
	}

	for _, item := range arrayField(doc, "activities") {
		state.Activities = append(state.Activities, Activity{
			Type:      scalarString(item.Get("type")),
			Timestamp: scalarString(item.Get("timestamp")),
		})
	}

	for _, item := range arrayField(doc, "studyLogs") {
		state.StudyLogs = append(state.StudyLogs, StudySession{
			Subject: scalarString(item.Get("subject")),
		})
	}

	if score := doc.Get("gameData.totalScore"); score.Type == gjson.Number {
		state.Game.TotalScore = score.Int()
	}

	state.Coupons = parseCoupons(doc.Get("coupons"))

	return state
}

func parseCoupons(doc gjson.Result) Coupons {
	coupons := Coupons{}
	if !doc.IsObject() {
		return coupons
	}

	if inventory := doc.Get("inventory"); inventory.IsObject() {
		coupons.Inventory = map[string]int{}
		inventory.ForEach(func(user, tokens gjson.Result) bool {
			if tokens.IsArray() {
				coupons.Inventory[user.String()] = len(tokens.Array())
			}
			return true
		})
	}

	if balances := doc.Get("balances"); balances.IsObject() {
		balances.ForEach(func(user, points gjson.Result) bool {
			coupons.Balances = append(coupons.Balances, Balance{
				User:   user.String(),
				Points: points.Int(),
				Valid:  points.Type == gjson.Number,
			})
			return true
		})
	}

	return coupons
}

func arrayField(doc gjson.Result, key string) []gjson.Result {
	value := doc.Get(key)
	if !value.IsArray() {
		return nil
	}
	return value.Array()
}

func scalarString(value gjson.Result) string {
	switch value.Type {
	case gjson.String:
		return value.String()
	case gjson.Number:
		return value.Raw
	default:
		return ""
	}
}
