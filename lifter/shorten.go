package lifter

import (
	"github.com/erraggy/schemalift/lifterrors"
	"github.com/erraggy/schemalift/parser"
)

// Rename records one shortening rename applied by the transformation.
type Rename struct {
	// From is the name synthesized during extraction.
	From string `json:"from"`
	// To is the shorter name derived from the shallowest usage context.
	To string `json:"to"`
}

// shorten is the global rename pass. For every registry entry referenced
// from more than one context it resynthesizes a name from the shallowest
// context (first seen wins on ties) and, when that differs from the current
// name, moves the entry and patches every reference slot. Single-use entries
// keep their first-pass name.
func (st *liftState) shorten() ([]Rename, error) {
	var renames []Rename
	// Iterate over a snapshot: rename rewrites st.names in place.
	snapshot := append([]string(nil), st.names...)
	for _, name := range snapshot {
		contexts := st.ledger[name]
		if len(contexts) < 2 {
			continue
		}
		shallowest := contexts[0]
		for _, ctx := range contexts[1:] {
			if ctx.Depth() < shallowest.Depth() {
				shallowest = ctx
			}
		}
		newName := synthesizeName(shallowest)
		if newName == name {
			continue
		}
		if err := st.rename(name, newName, shallowest); err != nil {
			return nil, err
		}
		renames = append(renames, Rename{From: name, To: newName})
	}
	return renames, nil
}

// rename moves a registry entry to newName and patches every reference slot
// that pointed at oldName. The slot index makes the rewrite exact: no
// reference to the old name can survive because every reference node was
// recorded when it was created. The same collision rules as registration
// apply to the new name.
func (st *liftState) rename(oldName, newName string, ctx Context) error {
	if st.reserved[newName] {
		return &lifterrors.NameCollisionError{
			Name:     newName,
			Existing: "components",
			Incoming: ctx.String(),
		}
	}
	if _, exists := st.registry[newName]; exists {
		return &lifterrors.NameCollisionError{
			Name:     newName,
			Existing: st.ledger[newName][0].String(),
			Incoming: ctx.String(),
		}
	}

	st.registry[newName] = st.registry[oldName]
	delete(st.registry, oldName)

	fp := st.fingerprints[oldName]
	st.fingerprints[newName] = fp
	delete(st.fingerprints, oldName)
	bucket := st.byFingerprint[fp]
	for i, name := range bucket {
		if name == oldName {
			bucket[i] = newName
		}
	}

	st.ledger[newName] = st.ledger[oldName]
	delete(st.ledger, oldName)

	for i, name := range st.names {
		if name == oldName {
			st.names[i] = newName
		}
	}

	for _, slot := range st.slots[oldName] {
		slot.Ref = parser.SchemaRef(newName)
	}
	st.slots[newName] = st.slots[oldName]
	delete(st.slots, oldName)

	st.logger.Debug("shortened schema name", "from", oldName, "to", newName, "context", ctx.String())
	return nil
}
