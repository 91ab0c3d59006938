package service

import (
	"encoding/json"
	"net/url"
	"regexp"
	"sort"
	"strconv"

	"github.com/omran/construction-projects/internal/model"
)

// OwnerPayload is one owner row as supplied by a client, before
// normalization. All fields are optional; dates and the share percentage
// arrive as loosely-typed values.
type OwnerPayload struct {
	OwnerName       string           `json:"owner_name"`
	OwnerNameAR     string           `json:"owner_name_ar"`
	OwnerNameEN     string           `json:"owner_name_en"`
	Nationality     string           `json:"nationality"`
	Phone           string           `json:"phone"`
	Email           string           `json:"email"`
	IDNumber        string           `json:"id_number"`
	IDIssueDate     model.FlexString `json:"id_issue_date"`
	IDExpiryDate    model.FlexString `json:"id_expiry_date"`
	RightHoldType   string           `json:"right_hold_type"`
	SharePossession string           `json:"share_possession"`
	SharePercent    model.FlexString `json:"share_percent"`
	IDFileID        *uint            `json:"id_file_id"`
}

// DecodeOwners interprets a raw JSON owners value, which may be either a
// list of owner objects or a single string containing the JSON-encoded
// equivalent. The returned bool reports whether owner data was supplied at
// all. Malformed input degrades to a supplied-but-empty list so one bad
// owners blob never blocks saving the rest of the entity.
func DecodeOwners(raw json.RawMessage) ([]OwnerPayload, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, false
	}

	var payloads []OwnerPayload
	if err := json.Unmarshal(raw, &payloads); err == nil {
		return payloads, true
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		if encoded == "" {
			return nil, true
		}
		if err := json.Unmarshal([]byte(encoded), &payloads); err == nil {
			return payloads, true
		}
	}

	return nil, true
}

var ownerFormKey = regexp.MustCompile(`^owners\[(\d+)\]\[([a-z_]+)\]$`)

// OwnersFromForm collects owner rows from flattened form keys of the shape
// owners[<index>][<field>]. The returned bool reports whether any owner key
// (or a whole "owners" value, handled through DecodeOwners) was present.
func OwnersFromForm(values url.Values) ([]OwnerPayload, bool) {
	if raw, ok := values["owners"]; ok && len(raw) > 0 {
		return DecodeOwners(json.RawMessage(strconv.Quote(raw[0])))
	}

	rows := map[int]*OwnerPayload{}
	for key, vals := range values {
		match := ownerFormKey.FindStringSubmatch(key)
		if match == nil || len(vals) == 0 {
			continue
		}
		index, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		row, ok := rows[index]
		if !ok {
			row = &OwnerPayload{}
			rows[index] = row
		}
		value := vals[0]
		switch match[2] {
		case "owner_name":
			row.OwnerName = value
		case "owner_name_ar":
			row.OwnerNameAR = value
		case "owner_name_en":
			row.OwnerNameEN = value
		case "nationality":
			row.Nationality = value
		case "phone":
			row.Phone = value
		case "email":
			row.Email = value
		case "id_number":
			row.IDNumber = value
		case "id_issue_date":
			row.IDIssueDate = model.FlexString(value)
		case "id_expiry_date":
			row.IDExpiryDate = model.FlexString(value)
		case "right_hold_type":
			row.RightHoldType = value
		case "share_possession":
			row.SharePossession = value
		case "share_percent":
			row.SharePercent = model.FlexString(value)
		}
	}
	if len(rows) == 0 {
		return nil, false
	}

	indexes := make([]int, 0, len(rows))
	for index := range rows {
		indexes = append(indexes, index)
	}
	sort.Ints(indexes)

	payloads := make([]OwnerPayload, 0, len(rows))
	for _, index := range indexes {
		payloads = append(payloads, *rows[index])
	}
	return payloads, true
}

// NormalizeOwners converts client owner rows into canonical owner records.
// A generic owner_name fills both language names; a single-language name is
// mirrored into the other. Rows without any name are dropped silently.
func NormalizeOwners(payloads []OwnerPayload) ([]model.SitePlanOwner, error) {
	owners := make([]model.SitePlanOwner, 0, len(payloads))
	for i, p := range payloads {
		nameAR, nameEN := p.OwnerNameAR, p.OwnerNameEN
		if nameAR == "" && nameEN == "" && p.OwnerName != "" {
			nameAR, nameEN = p.OwnerName, p.OwnerName
		}
		if nameAR == "" {
			nameAR = nameEN
		}
		if nameEN == "" {
			nameEN = nameAR
		}
		if nameAR == "" && nameEN == "" {
			continue
		}

		share := 100.0
		if p.SharePercent != "" {
			parsed, err := strconv.ParseFloat(string(p.SharePercent), 64)
			if err != nil {
				return nil, fieldErr(ownerField(i, "share_percent"), "must be a number")
			}
			share = parsed
		}
		if share < 0 || share > 100 {
			return nil, fieldErr(ownerField(i, "share_percent"), "must be between 0 and 100")
		}

		rightHold := p.RightHoldType
		if rightHold == "" {
			rightHold = "Ownership"
		}

		owners = append(owners, model.SitePlanOwner{
			OwnerNameAR:     nameAR,
			OwnerNameEN:     nameEN,
			Nationality:     p.Nationality,
			Phone:           p.Phone,
			Email:           p.Email,
			IDNumber:        p.IDNumber,
			IDIssueDate:     parseDatePtr(string(p.IDIssueDate)),
			IDExpiryDate:    parseDatePtr(string(p.IDExpiryDate)),
			RightHoldType:   rightHold,
			SharePossession: p.SharePossession,
			SharePercent:    share,
			IDFileID:        p.IDFileID,
		})
	}
	return owners, nil
}

func ownerField(index int, field string) string {
	return "owners[" + strconv.Itoa(index) + "]." + field
}
