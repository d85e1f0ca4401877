package values

import (
	"encoding/json"
	"fmt"
)

// PlanName represents an offer from the fixed Addinteli catalog. Any name
// outside the catalog is rejected, matching the carrier's own validation.
type PlanName struct {
	name string
}

// PlanCatalog is the fixed set of offer names accepted by the carrier
// (prepaid, MiFi-share and annual variants).
var PlanCatalog = []string{
	"MEXA FLASH 500 MB",
	"MEXA SEMANA 2GB",
	"MEXA QUINCENA 5 GB",
	"MEXA BASICO 2GB - 30 DIAS",
	"MEXA LITE 4GB - 30 DIAS",
	"MEXA PLUS 12 GB - 30 DIAS",
	"MEXA EPICO 24 GB - 30 DIAS",
	"MEXA ANTIGUO 40 GB - NO COMPARTE",
	"MEXA TITAN 35 GB - 30 DIAS",
	"MEXA INMORTAL 50 GB - 30 DIAS",
	"MEXA MINI 3 GB - ANUAL",
	"MEXA LEGADO 24 GB - 6 MESES",
	"MEXA SLIM 5 GB - ANUAL",
	"MEXA ETERNO 24 GB - ANUAL",
	"MIFI SHARE 5GB",
	"MIFI SHARE 10GB",
	"MIFI SHARE 20GB",
	"MIFI SHARE 30GB",
	"MIFI SHARE 50GB",
}

var planCatalogSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(PlanCatalog))
	for _, name := range PlanCatalog {
		set[name] = struct{}{}
	}
	return set
}()

// IsCatalogPlan reports whether name belongs to the fixed offer catalog.
func IsCatalogPlan(name string) bool {
	_, ok := planCatalogSet[name]
	return ok
}

// NewPlanName creates a new PlanName value object with catalog validation.
func NewPlanName(name string) (PlanName, error) {
	if name == "" {
		return PlanName{}, fmt.Errorf("plan name cannot be empty")
	}
	if !IsCatalogPlan(name) {
		return PlanName{}, fmt.Errorf("plan name not in catalog: %s", name)
	}
	return PlanName{name: name}, nil
}

// MustNewPlanName creates a PlanName and panics on error (for constants/tests).
func MustNewPlanName(name string) PlanName {
	p, err := NewPlanName(name)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the catalog offer name.
func (p PlanName) String() string {
	return p.name
}

// IsEmpty checks if the PlanName is empty.
func (p PlanName) IsEmpty() bool {
	return p.name == ""
}

// Equal checks if two PlanName values are equal.
func (p PlanName) Equal(other PlanName) bool {
	return p.name == other.name
}

// MarshalJSON implements JSON marshaling.
func (p PlanName) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.name)
}

// UnmarshalJSON implements JSON unmarshaling.
func (p *PlanName) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	plan, err := NewPlanName(name)
	if err != nil {
		return err
	}
	*p = plan
	return nil
}
