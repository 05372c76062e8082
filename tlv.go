package pixqr

// splitOne splits input into its leading (tag, length-digits, rest) triple.
// It returns ok == false when input has fewer than four characters — the
// minimum needed to hold a tag and a length field. It does not parse the
// length into an integer and does not consume the value; it is a pure
// substring operation.
func splitOne(input string) (tag, lengthDigits, rest string, ok bool) {
	if len(input) < 4 {
		return "", "", "", false
	}
	return input[0:2], input[2:4], input[4:], true
}

// isTwoDigits reports whether s is exactly two ASCII decimal digits.
func isTwoDigits(s string) bool {
	if len(s) != 2 {
		return false
	}
	return s[0] >= '0' && s[0] <= '9' && s[1] >= '0' && s[1] <= '9'
}

// writeTLV appends a single TT LL V triple for (tag, value) to the encoded
// output, failing with *FieldTooLongError if value is too long to fit the
// two-digit length field.
func writeTLV(dst *[]byte, tag, value string) error {
	n := stringLength(value)
	if n > 99 {
		return &FieldTooLongError{Tag: tag, Len: n}
	}
	*dst = append(*dst, tag...)
	*dst = append(*dst, byte('0'+n/10), byte('0'+n%10))
	*dst = append(*dst, value...)
	return nil
}
