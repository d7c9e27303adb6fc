package pets

// ===============================
// Pet listing type & status
// ===============================

type Type string

const (
	TypeAdoption Type = "adoption"
	TypePersonal Type = "personal"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusPersonal  Status = "personal"
	StatusAdopted   Status = "adopted"
)

// DeriveStatus maps a listing type to its initial status: adoption listings
// start available, everything else is a personal pet. Adopted is only ever
// set by the explicit adopt action.
func DeriveStatus(petType string) string {
	if Type(petType) == TypeAdoption {
		return string(StatusAvailable)
	}
	return string(StatusPersonal)
}
