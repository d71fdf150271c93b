package domain_test

import (
	"testing"

	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/domain"
)

func TestZone_EffectiveType(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		stored  domain.ZoneType
		reports int
		want    domain.ZoneType
	}{
		{"safe_no_reports", domain.ZoneSafe, 0, domain.ZoneSafe},
		{"danger_below_threshold", domain.ZoneDanger, 9, domain.ZoneDanger},
		{"danger_at_threshold", domain.ZoneDanger, 10, domain.ZoneCritical},
		{"safe_at_threshold", domain.ZoneSafe, 10, domain.ZoneCritical},
		{"danger_above_threshold", domain.ZoneDanger, 42, domain.ZoneCritical},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			z := domain.Zone{Type: c.stored, Reports: c.reports}
			if got := z.EffectiveType(); got != c.want {
				t.Fatalf("EffectiveType: got=%q want=%q", got, c.want)
			}
		})
	}
}

func TestZone_EffectiveType_MonotonicOverThreshold(t *testing.T) {
	t.Parallel()

	z := domain.Zone{Type: domain.ZoneSafe}
	for r := domain.CriticalReportThreshold; r < domain.CriticalReportThreshold+20; r++ {
		z.Reports = r
		if z.EffectiveType() != domain.ZoneCritical {
			t.Fatalf("reports=%d: expected CRITICAL, got %q", r, z.EffectiveType())
		}
	}
}

func TestZone_CanMutate(t *testing.T) {
	t.Parallel()

	z := domain.Zone{CreatedBy: "user-a"}

	if !z.CanMutate("user-a") {
		t.Fatalf("creator should be allowed to mutate")
	}
	if z.CanMutate("user-b") {
		t.Fatalf("non-creator must not be allowed to mutate")
	}

	orphan := domain.Zone{}
	if orphan.CanMutate("") {
		t.Fatalf("zone without creator must not be mutable")
	}
}

func TestZone_Pending(t *testing.T) {
	t.Parallel()

	if !(domain.Zone{ID: "temp-1712345678901"}).Pending() {
		t.Fatalf("temp id should be pending")
	}
	if (domain.Zone{ID: "0b9fd291-6fc2-4f18-9a53-1bb1b3b6d1a0"}).Pending() {
		t.Fatalf("uuid id should not be pending")
	}
	if (domain.Zone{ID: ""}).Pending() {
		t.Fatalf("empty id should not be pending")
	}
}
