package value

// Kind discriminates the payload carried by a Value.
type Kind uint8

const (
	KindBool Kind = iota
	KindInt
	KindNumber
	KindString
	KindUserdata
	KindInvalid
)

var kindNames = [...]string{
	KindBool:     "bool",
	KindInt:      "int",
	KindNumber:   "number",
	KindString:   "string",
	KindUserdata: "userdata",
	KindInvalid:  "invalid",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}
