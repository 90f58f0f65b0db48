package address

var defaultCodec = NewCodec()

// Default returns the package level codec.
func Default() *Codec {
	return defaultCodec
}

// IsValid reports whether addr decodes and, when prefix is not empty, carries
// that prefix.
func IsValid(addr, prefix string) bool {
	decoded, err := defaultCodec.Decode(addr)
	if err != nil {
		return false
	}
	return prefix == "" || decoded.Prefix == prefix
}
