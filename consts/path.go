package consts

// Path separator and pattern markers.
const (
	RuneFwdSlash = '/'
	RuneColon    = ':'
	RuneAsterisk = '*'
)

const (
	StrSlash = "/"
	StrEmpty = ""
)

var (
	BytSlash = []byte(StrSlash)
)
