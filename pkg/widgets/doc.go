// Package widgets provides accessible UI primitives built on the core
// framework.
//
// Widgets here are unstyled building blocks: each renders host-neutral
// nodes carrying the correct roles, aria-* attributes, and data-state
// markers, and leaves presentation to the application via attributes and
// the theme package.
//
// # Widget Construction
//
// Widgets are plain structs configured by literal:
//
//	widgets.Switch{
//	    Name:           "notifications",
//	    DefaultChecked: true,
//	    OnCheckedChange: func(v bool) { ... },
//	    Child:          widgets.SwitchThumb{},
//	}
//
// Controls that carry form values participate in the surrounding [Form]
// automatically when given a Name.
package widgets
