package types

// BulletPairs is the input document for batch arbitration: two parallel
// lists of bullet texts plus an optional target role title. The lists may
// differ in length; the arbiter mirrors the missing side per pair.
type BulletPairs struct {
	RoleTitle string   `json:"role_title,omitempty"`
	Originals []string `json:"originals"`
	Tailored  []string `json:"tailored"`
}
