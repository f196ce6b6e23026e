package conn

// Variant tags how generated keys are requested on an execution call.
// Exactly one concrete variant is forwarded, unchanged, from the public
// statement surface down to the native execution call.

type Variant interface {
	iVariant()
}

type NoVariant struct{}

type ReturnGeneratedKeys struct {
	Return bool
}

type ColumnIndexes struct {
	Indexes []int
}

type ColumnNames struct {
	Names []string
}

func (NoVariant) iVariant()           {}
func (ReturnGeneratedKeys) iVariant() {}
func (ColumnIndexes) iVariant()       {}
func (ColumnNames) iVariant()         {}
