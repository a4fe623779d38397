package token

// Operator sets for longest-match scanning: 4-, then 3-, then 2-character
// windows, then single characters. ">>>=" must win over ">>>" over ">>".
// They live here rather than in the scanner because the minifier also needs
// them, to keep dropped whitespace from fusing adjacent operators.
var (
	Operators4 = map[string]struct{}{
		">>>=": {},
	}
	Operators3 = map[string]struct{}{
		"...": {},
		"===": {},
		"!==": {},
		">>>": {},
		"**=": {},
		"<<=": {},
		">>=": {},
		"&&=": {},
		"||=": {},
		"??=": {},
	}
	Operators2 = map[string]struct{}{
		"==": {},
		"!=": {},
		"<=": {},
		">=": {},
		"&&": {},
		"||": {},
		"??": {},
		"?.": {},
		"++": {},
		"--": {},
		"+=": {},
		"-=": {},
		"*=": {},
		"/=": {},
		"%=": {},
		"&=": {},
		"|=": {},
		"^=": {},
		"<<": {},
		">>": {},
		"=>": {},
		"**": {},
	}
	Operators1 = map[byte]struct{}{
		'+': {}, '-': {}, '*': {}, '/': {}, '%': {},
		'=': {}, '<': {}, '>': {}, '!': {},
		'&': {}, '|': {}, '^': {}, '~': {},
		'?': {}, ':': {},
	}
)
