package menu

// Menu is an ordered list of items with a keyboard selection.
type Menu struct {
	Items []*Item

	app      *ApplicationMenu
	parent   *Item
	selected int
	bar      bool
}

// New creates a menu holding items.
func New(items ...*Item) *Menu {
	m := &Menu{selected: -1}
	for _, it := range items {
		m.Append(it)
	}
	return m
}

// Append adds an item to the end of the menu.
func (m *Menu) Append(it *Item) {
	it.owner = m
	if it.Submenu != nil {
		it.Submenu.parent = it
		it.Submenu.attach(m.app)
	}
	m.Items = append(m.Items, it)
}

// Parent returns the item that opens this menu, or nil for the menu bar.
func (m *Menu) Parent() *Item {
	return m.parent
}

// IsBar reports whether m is the application menu bar.
func (m *Menu) IsBar() bool {
	return m.bar
}

// Selected returns the index of the keyboard selection, or -1.
func (m *Menu) Selected() int {
	return m.selected
}

// SelectedItem returns the keyboard-selected item, or nil.
func (m *Menu) SelectedItem() *Item {
	if m.selected < 0 || m.selected >= len(m.Items) {
		return nil
	}
	return m.Items[m.selected]
}

// Select moves the selection to index if that item is selectable.
func (m *Menu) Select(index int) bool {
	if index < 0 || index >= len(m.Items) || !m.Items[index].Selectable() {
		return false
	}
	m.selected = index
	return true
}

// SelectFirst selects the first selectable item.
func (m *Menu) SelectFirst() {
	m.selected = -1
	m.SelectNext(1)
}

// SelectNext moves the selection by delta (+1 or -1) to the next
// selectable item, wrapping around. The selection is unchanged when no
// other item is selectable.
func (m *Menu) SelectNext(delta int) {
	n := len(m.Items)
	if n == 0 {
		return
	}

	idx := m.selected
	if idx < 0 && delta < 0 {
		idx = n
	}
	for i := 0; i < n; i++ {
		idx = ((idx+delta)%n + n) % n
		if m.Items[idx].Selectable() {
			m.selected = idx
			return
		}
	}
}

// ItemByID finds an item in m or any of its submenus.
func (m *Menu) ItemByID(id string) *Item {
	var found *Item
	m.Walk(func(it *Item) bool {
		if it.ID == id {
			found = it
			return false
		}
		return true
	})
	return found
}

// Walk visits every item depth-first until fn returns false.
func (m *Menu) Walk(fn func(it *Item) bool) bool {
	for _, it := range m.Items {
		if !fn(it) {
			return false
		}
		if it.Submenu != nil && !it.Submenu.Walk(fn) {
			return false
		}
	}
	return true
}

// attach links m and its submenus to app.
func (m *Menu) attach(app *ApplicationMenu) {
	m.app = app
	for _, it := range m.Items {
		if it.Submenu != nil {
			it.Submenu.attach(app)
		}
	}
}
