package lifter

import (
	"github.com/erraggy/schemalift/lifterrors"
	"github.com/erraggy/schemalift/parser"
)

// liftState is the mutable state of a single transformation: the registry,
// the usage ledger, the fingerprint index, and the back-reference slot index
// used for atomic renames. One liftState is created per Lift call and
// discarded when it returns, so repeated invocations never share state.
type liftState struct {
	// names records registration order. It drives deterministic output and
	// the first-seen tie break during shortening.
	names []string
	// registry maps canonical name to the hoisted schema.
	registry map[string]*parser.Schema
	// fingerprints maps canonical name to its registration fingerprint.
	fingerprints map[string]Fingerprint
	// byFingerprint buckets registered names by fingerprint. A bucket can
	// hold several names when distinct shapes collide on the hash; lookup
	// resolves the bucket with an exact shape comparison.
	byFingerprint map[Fingerprint][]string
	// ledger maps canonical name to every context that referenced it, in
	// occurrence order, starting with the context that created it.
	ledger map[string][]Context
	// slots maps canonical name to every reference node in the document
	// pointing at it. Renames patch these slots directly.
	slots map[string][]*parser.Schema
	// reserved holds component names that already existed in the input
	// document. They are never deduplicated against, but synthesized and
	// shortened names must not clash with them.
	reserved map[string]bool

	logger parser.Logger
}

// newLiftState creates the state for one transformation, reserving the names
// of any components already present in the input document.
func newLiftState(existing map[string]*parser.Schema, logger parser.Logger) *liftState {
	st := &liftState{
		registry:      make(map[string]*parser.Schema),
		fingerprints:  make(map[string]Fingerprint),
		byFingerprint: make(map[Fingerprint][]string),
		ledger:        make(map[string][]Context),
		slots:         make(map[string][]*parser.Schema),
		reserved:      make(map[string]bool, len(existing)),
		logger:        logger,
	}
	for name := range existing {
		st.reserved[name] = true
	}
	return st
}

// lookup finds a registered name for the given fingerprint and shape.
// A fingerprint hit alone is not enough: the candidate must also compare
// equal under parser.EqualShape, so hash collisions between distinct shapes
// fall through to a fresh registration.
func (st *liftState) lookup(fp Fingerprint, node *parser.Schema) (string, bool) {
	for _, name := range st.byFingerprint[fp] {
		if parser.EqualShape(st.registry[name], node) {
			return name, true
		}
	}
	return "", false
}

// register binds a new name to a schema, seeding its ledger entry with the
// creating context. Binding a name that is already taken, either by a
// pre-existing component or by an earlier registration, is a fatal
// NameCollisionError.
func (st *liftState) register(name string, node *parser.Schema, fp Fingerprint, ctx Context) error {
	if st.reserved[name] {
		return &lifterrors.NameCollisionError{
			Name:     name,
			Existing: "components",
			Incoming: ctx.String(),
		}
	}
	if _, exists := st.registry[name]; exists {
		return &lifterrors.NameCollisionError{
			Name:     name,
			Existing: st.ledger[name][0].String(),
			Incoming: ctx.String(),
		}
	}
	st.names = append(st.names, name)
	st.registry[name] = node
	st.fingerprints[name] = fp
	st.byFingerprint[fp] = append(st.byFingerprint[fp], name)
	st.ledger[name] = []Context{ctx}
	st.logger.Debug("registered schema", "name", name, "context", ctx.String(), "fingerprint", fp.String())
	return nil
}

// recordUse appends a context to an existing ledger entry. A fingerprint hit
// without a ledger entry means the state is corrupt, which is an internal
// defect and aborts the transformation.
func (st *liftState) recordUse(name string, ctx Context) error {
	if _, ok := st.ledger[name]; !ok {
		return &lifterrors.LedgerError{
			Name:   name,
			Reason: "fingerprint hit for a name with no usage ledger entry",
		}
	}
	st.ledger[name] = append(st.ledger[name], ctx)
	st.logger.Debug("recorded schema reuse", "name", name, "context", ctx.String())
	return nil
}

// newReference creates a reference node pointing at name and records it in
// the slot index so a later rename can patch it in place.
func (st *liftState) newReference(name string) *parser.Schema {
	ref := &parser.Schema{Ref: parser.SchemaRef(name)}
	st.slots[name] = append(st.slots[name], ref)
	return ref
}
