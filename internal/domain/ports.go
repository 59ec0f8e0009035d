package domain

// MenuLoader loads the effective menu for a directory, merging any
// .brewkraft.yaml overrides over the defaults.
type MenuLoader interface {
	Load(dir string) (Menu, error)
}
