package reader

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// decodeLong parses a long literal, stripping the optional l/L suffix.
func decodeLong(text string) (Long, error) {
	text = strings.TrimSuffix(strings.TrimSuffix(text, "l"), "L")
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("long literal out of range: %w", err)
	}
	return Long(n), nil
}

func decodeHex(text string) (Long, error) {
	digits := text[2:] // 0x
	n, err := strconv.ParseInt(digits, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("hex literal out of range: %w", err)
	}
	return Long(n), nil
}

func decodeBinary(text string) (Long, error) {
	digits := text[2:] // 0b
	n, err := strconv.ParseInt(digits, 2, 64)
	if err != nil {
		return 0, fmt.Errorf("binary literal out of range: %w", err)
	}
	return Long(n), nil
}

func decodeBigNum(text string) (BigNum, error) {
	digits := strings.TrimSuffix(strings.TrimSuffix(text, "n"), "N")
	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return BigNum{}, fmt.Errorf("malformed bignum literal %q", text)
	}
	return BigNum{Int: n}, nil
}

func decodeRatio(text string) (Ratio, error) {
	r, ok := new(big.Rat).SetString(text)
	if !ok {
		return Ratio{}, fmt.Errorf("malformed ratio literal %q", text)
	}
	return Ratio{Rat: r}, nil
}

func decodeDouble(text string) (Double, error) {
	switch text {
	case "Infinity":
		return Double(math.Inf(1)), nil
	case "-Infinity":
		return Double(math.Inf(-1)), nil
	case "NaN", "-NaN":
		return Double(math.NaN()), nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed double literal %q", text)
	}
	return Double(f), nil
}

// decodeString resolves escapes in a string literal. An unknown escape
// keeps the escaped character as-is, matching how the lexer treats the
// pair as opaque.
func decodeString(text string) (Str, error) {
	if len(text) < 2 || text[0] != '"' {
		return "", fmt.Errorf("malformed string literal")
	}
	body := text[1:]
	if body[len(body)-1] == '"' {
		body = body[:len(body)-1]
	}

	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 >= len(body) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch body[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case 'f':
			sb.WriteByte('\f')
		case 'b':
			sb.WriteByte('\b')
		case '\\':
			sb.WriteByte('\\')
		case '"':
			sb.WriteByte('"')
		case 'u':
			if i+4 < len(body) {
				if n, err := strconv.ParseUint(body[i+1:i+5], 16, 32); err == nil {
					sb.WriteRune(rune(n))
					i += 4
					continue
				}
			}
			sb.WriteByte('u')
		default:
			sb.WriteByte(body[i])
		}
	}
	return Str(sb.String()), nil
}

// decodeChar resolves a character literal to its rune.
func decodeChar(text string) (Char, error) {
	if len(text) < 2 || text[0] != '\\' {
		return 0, fmt.Errorf("malformed character literal %q", text)
	}
	body := text[1:]
	switch body {
	case "newline":
		return Char('\n'), nil
	case "return":
		return Char('\r'), nil
	case "space":
		return Char(' '), nil
	case "tab":
		return Char('\t'), nil
	case "formfeed":
		return Char('\f'), nil
	case "backspace":
		return Char('\b'), nil
	}
	if len(body) == 5 && body[0] == 'u' {
		n, err := strconv.ParseUint(body[1:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("malformed unicode escape %q", text)
		}
		return Char(rune(n)), nil
	}
	r := []rune(body)
	if len(r) != 1 {
		return 0, fmt.Errorf("malformed character literal %q", text)
	}
	return Char(r[0]), nil
}
