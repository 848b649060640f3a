package models

// EnumSet is a closed set of allowed values whose authoritative member list
// lives in a database enum type. Sets are loaded once at startup so literals
// are never duplicated in code.
type EnumSet struct {
	members []string
	index   map[string]struct{}
}

// NewEnumSet builds an EnumSet from an ordered member list.
func NewEnumSet(members []string) EnumSet {
	index := make(map[string]struct{}, len(members))
	for _, m := range members {
		index[m] = struct{}{}
	}
	return EnumSet{members: members, index: index}
}

// Contains reports whether v is a member of the set.
func (e EnumSet) Contains(v string) bool {
	_, ok := e.index[v]
	return ok
}

// Members returns the ordered member list.
func (e EnumSet) Members() []string {
	return e.members
}

// StatusRegistry holds the enum sets mirrored from the database at startup.
type StatusRegistry struct {
	BookingStatus   EnumSet
	PaymentStatus   EnumSet
	ExpenseCategory EnumSet
}
