package model

import (
	"encoding/json"
	"testing"
)

func TestFlexStringUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want FlexString
	}{
		{name: "string", raw: `"50.5"`, want: "50.5"},
		{name: "number", raw: `50.5`, want: "50.5"},
		{name: "integer", raw: `100`, want: "100"},
		{name: "null", raw: `null`, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got FlexString
			if err := json.Unmarshal([]byte(tc.raw), &got); err != nil {
				t.Fatalf("unmarshal %s failed: %v", tc.raw, err)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFlexStringFloat(t *testing.T) {
	if got := FlexString("60").Float(100); got != 60 {
		t.Fatalf("Float = %v, want 60", got)
	}
	if got := FlexString("").Float(100); got != 100 {
		t.Fatalf("empty Float = %v, want default", got)
	}
	if got := FlexString("half").Float(100); got != 100 {
		t.Fatalf("unparseable Float = %v, want default", got)
	}
}

func TestSitePlanSnapshotEmptySerialization(t *testing.T) {
	raw, err := json.Marshal(SitePlanSnapshot{})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(raw) != "{}" {
		t.Fatalf("empty snapshot = %s, want {}", raw)
	}

	value, err := SitePlanSnapshot{}.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if value != "{}" {
		t.Fatalf("Value = %v, want {}", value)
	}
}

func TestSitePlanSnapshotScanRoundTrip(t *testing.T) {
	notes := "corner plot"
	src := SitePlanSnapshot{
		Property: &PropertySection{Municipality: "أبوظبي", LandNo: "P-204"},
		Owners: []OwnerSnapshot{
			{OwnerNameAR: "محمد", SharePercent: 60},
		},
		Notes: &notes,
	}
	value, err := src.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}

	var dst SitePlanSnapshot
	if err := dst.Scan(value); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if dst.Property == nil || dst.Property.Municipality != "أبوظبي" {
		t.Fatalf("property lost in round trip: %+v", dst.Property)
	}
	if len(dst.Owners) != 1 || dst.Owners[0].SharePercent != 60 {
		t.Fatalf("owners lost in round trip: %+v", dst.Owners)
	}
	if dst.Notes == nil || *dst.Notes != "corner plot" {
		t.Fatalf("notes lost in round trip: %v", dst.Notes)
	}
}

func TestSitePlanSnapshotScanNil(t *testing.T) {
	var dst SitePlanSnapshot
	if err := dst.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) failed: %v", err)
	}
	if !dst.IsEmpty() {
		t.Fatalf("Scan(nil) should leave the snapshot empty: %+v", dst)
	}
}

func TestOwnerListValueAndScan(t *testing.T) {
	var nilList OwnerList
	value, err := nilList.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if value != "[]" {
		t.Fatalf("nil list Value = %v, want []", value)
	}

	list := OwnerList{{OwnerNameAR: "محمد", SharePercent: "60"}}
	value, err = list.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}

	var dst OwnerList
	if err := dst.Scan([]byte(value.(string))); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(dst) != 1 || dst[0].OwnerNameAR != "محمد" || dst[0].SharePercent != "60" {
		t.Fatalf("round trip mismatch: %+v", dst)
	}
}

func TestOwnerListUnmarshalMixedShareTypes(t *testing.T) {
	raw := `[{"owner_name_ar":"محمد","share_percent":60},{"owner_name_ar":"سالم","share_percent":"40"}]`
	var list OwnerList
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if list[0].SharePercent != "60" || list[1].SharePercent != "40" {
		t.Fatalf("share values not normalized: %+v", list)
	}
}

func TestLicenseSnapshotEmptySerialization(t *testing.T) {
	raw, err := json.Marshal(LicenseSnapshot{})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(raw) != "{}" {
		t.Fatalf("empty snapshot = %s, want {}", raw)
	}
	if !(LicenseSnapshot{}).IsEmpty() {
		t.Fatal("zero LicenseSnapshot should report empty")
	}
}
