package domain

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Profile is the local user's pairing record as the web UI stores it:
// {"name": "...", "partner": {"name": "..."}}.
type Profile struct {
	Name    string
	Partner string
}

func (p Profile) HasPartner() bool {
	return strings.TrimSpace(p.Partner) != ""
}

func ParseProfile(raw string) (Profile, error) {
	if !gjson.Valid(raw) {
		return Profile{}, fmt.Errorf("%w: not valid JSON", ErrProfileInvalid)
	}

	doc := gjson.Parse(raw)
	if !doc.IsObject() {
		return Profile{}, fmt.Errorf("%w: expected an object", ErrProfileInvalid)
	}

	return Profile{
		Name:    strings.TrimSpace(stringField(doc, "name")),
		Partner: strings.TrimSpace(stringField(doc.Get("partner"), "name")),
	}, nil
}

func stringField(doc gjson.Result, key string) string {
	value := doc.Get(key)
	if value.Type != gjson.String {
		return ""
	}
	return value.String()
}
