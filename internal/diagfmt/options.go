package diagfmt

// PrettyOpts управляет человекочитаемым выводом диагностик.
type PrettyOpts struct {
	// Color включает ANSI-цвета.
	Color bool
	// Context — показывать ли строку-источник с подчёркиванием.
	Context bool
}
