package txtpic

// Character sets commonly scored for text art.
var (
	// BlockChars are the Unicode block elements.
	BlockChars = []rune{
		'▀', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█',
		'▌', '▍', '▎', '▏', '▐', '░', '▒', '▓',
		'▔', '▕', '▖', '▗', '▘', '▙', '▚', '▛', '▜', '▝', '▞', '▟',
	}

	// BoxChars are the light and heavy box drawing characters.
	BoxChars = []rune{
		'─', '━', '│', '┃', '┄', '┅', '┆', '┇', '┈', '┉', '┊', '┋',
		'┌', '┍', '┎', '┏', '┐', '┑', '┒', '┓',
		'└', '┕', '┖', '┗', '┘', '┙', '┚', '┛',
		'├', '┝', '┞', '┟', '┠', '┡', '┢', '┣',
		'┤', '┥', '┦', '┧', '┨', '┩', '┪', '┫',
		'┬', '┭', '┮', '┯', '┰', '┱', '┲', '┳',
		'┴', '┵', '┶', '┷', '┸', '┹', '┺', '┻',
		'┼', '┽', '┾', '┿', '╀', '╁', '╂', '╃', '╄', '╅', '╆', '╇', '╈', '╉', '╊', '╋',
		'╌', '╍', '╎', '╏',
		'═', '║', '╒', '╓', '╔', '╕', '╖', '╗',
		'╘', '╙', '╚', '╛', '╜', '╝', '╞', '╟',
		'╠', '╡', '╢', '╣', '╤', '╥', '╦', '╧',
		'╨', '╩', '╪', '╫', '╬',
	}
)

// ASCIIChars returns the printable ASCII characters, space included.
func ASCIIChars() []rune {
	runes := make([]rune, 0, 95)
	for r := rune(32); r <= rune(126); r++ {
		runes = append(runes, r)
	}
	return runes
}

// CharacterSet returns a named character set: "ascii", "blocks", "box" or
// "all". ok is false for unknown names.
func CharacterSet(name string) ([]rune, bool) {
	switch name {
	case "ascii":
		return ASCIIChars(), true
	case "blocks":
		return append([]rune{' '}, BlockChars...), true
	case "box":
		return append([]rune{' '}, BoxChars...), true
	case "all":
		all := ASCIIChars()
		all = append(all, BlockChars...)
		return append(all, BoxChars...), true
	}
	return nil, false
}
