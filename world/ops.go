package world

import (
	"strings"

	"github.com/dergwasm/go-resonite"
	"golang.org/x/text/cases"
)

// The methods below operate on raw reference ids the way the host functions
// receive them. Functions returning a reference return 0 when there is none.

func (w *World) RootSlot() uint64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.root.id
}

func (w *World) SlotParent(slot uint64) (uint64, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	s, err := lookup[*Slot](w, slot)
	if err != nil || s.parent == nil {
		return 0, err
	}
	return s.parent.id, nil
}

// SlotActiveUser returns the user whose user root is the slot or one of its
// ancestors.
func (w *World) SlotActiveUser(slot uint64) (uint64, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	s, err := lookup[*Slot](w, slot)
	if err != nil {
		return 0, err
	}
	if ur := s.activeUserRoot(); ur != nil {
		return ur.user.id, nil
	}
	return 0, nil
}

func (w *World) SlotActiveUserRoot(slot uint64) (uint64, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	s, err := lookup[*Slot](w, slot)
	if err != nil {
		return 0, err
	}
	if ur := s.activeUserRoot(); ur != nil {
		return ur.id, nil
	}
	return 0, nil
}

func (w *World) SlotObjectRoot(slot uint64, onlyExplicit bool) (uint64, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	s, err := lookup[*Slot](w, slot)
	if err != nil {
		return 0, err
	}
	if root := s.objectRootOf(onlyExplicit); root != nil {
		return root.id, nil
	}
	return 0, nil
}

func (w *World) SlotName(slot uint64) (string, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	s, err := lookup[*Slot](w, slot)
	if err != nil {
		return "", err
	}
	return s.name, nil
}

func (w *World) SetSlotName(slot uint64, name string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	s, err := lookup[*Slot](w, slot)
	if err != nil {
		return err
	}
	s.name = name
	return nil
}

func (w *World) SlotNumChildren(slot uint64) (int32, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	s, err := lookup[*Slot](w, slot)
	if err != nil {
		return 0, err
	}
	return int32(len(s.children)), nil
}

// SlotChild returns 0 without an error when index is out of range.
func (w *World) SlotChild(slot uint64, index int32) (uint64, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	s, err := lookup[*Slot](w, slot)
	if err != nil {
		return 0, err
	}
	if index < 0 || int(index) >= len(s.children) {
		return 0, nil
	}
	return s.children[index].id, nil
}

func (w *World) SlotFindChildByName(slot uint64, name string, matchSubstring, ignoreCase bool, maxDepth int32) (uint64, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	s, err := lookup[*Slot](w, slot)
	if err != nil {
		return 0, err
	}
	if found := s.find(nameMatcher(name, matchSubstring, ignoreCase), maxDepth); found != nil {
		return found.id, nil
	}
	return 0, nil
}

func (w *World) SlotFindChildByTag(slot uint64, tag string, maxDepth int32) (uint64, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	s, err := lookup[*Slot](w, slot)
	if err != nil {
		return 0, err
	}
	found := s.find(func(c *Slot) bool { return c.tag == tag }, maxDepth)
	if found != nil {
		return found.id, nil
	}
	return 0, nil
}

// SlotComponent returns the first component on the slot of the given type.
func (w *World) SlotComponent(slot uint64, typeName string) (uint64, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	s, err := lookup[*Slot](w, slot)
	if err != nil {
		return 0, err
	}
	for _, c := range s.components {
		if c.typeName == typeName {
			return c.id, nil
		}
	}
	return 0, nil
}

func (w *World) ComponentTypeName(component uint64) (string, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	c, err := lookup[*Component](w, component)
	if err != nil {
		return "", err
	}
	return c.typeName, nil
}

// ComponentMember returns the type code and reference of a member.
func (w *World) ComponentMember(component uint64, name string) (int32, uint64, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	c, err := lookup[*Component](w, component)
	if err != nil {
		return resonite.MemberTypeUnknown, 0, err
	}
	m := c.member(name)
	if m == nil {
		return resonite.MemberTypeUnknown, 0, ErrNoSuchMember
	}
	return m.typeCode, m.id, nil
}

func (w *World) GetInt(value uint64) (int32, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	m, err := w.value(value, resonite.MemberTypeValueInt)
	if err != nil {
		return 0, err
	}
	return m.i, nil
}

func (w *World) SetInt(value uint64, v int32) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	m, err := w.value(value, resonite.MemberTypeValueInt)
	if err != nil {
		return err
	}
	m.i = v
	return nil
}

func (w *World) GetFloat(value uint64) (float32, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	m, err := w.value(value, resonite.MemberTypeValueFloat)
	if err != nil {
		return 0, err
	}
	return m.f, nil
}

func (w *World) SetFloat(value uint64, v float32) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	m, err := w.value(value, resonite.MemberTypeValueFloat)
	if err != nil {
		return err
	}
	m.f = v
	return nil
}

func (w *World) GetDouble(value uint64) (float64, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	m, err := w.value(value, resonite.MemberTypeValueDouble)
	if err != nil {
		return 0, err
	}
	return m.d, nil
}

func (w *World) SetDouble(value uint64, v float64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	m, err := w.value(value, resonite.MemberTypeValueDouble)
	if err != nil {
		return err
	}
	m.d = v
	return nil
}

func (w *World) value(id uint64, typeCode int32) (*Member, error) {
	m, err := lookup[*Member](w, id)
	if err != nil {
		return nil, err
	}
	if m.typeCode != typeCode {
		return nil, ErrTypeMismatch
	}
	return m, nil
}

func nameMatcher(name string, matchSubstring, ignoreCase bool) func(*Slot) bool {
	normalize := func(s string) string { return s }
	if ignoreCase {
		fold := cases.Fold()
		normalize = fold.String
	}
	name = normalize(name)
	return func(s *Slot) bool {
		candidate := normalize(s.name)
		if matchSubstring {
			return strings.Contains(candidate, name)
		}
		return candidate == name
	}
}
