package frontend

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
)

func isFloatLiteral(text string) bool {
	return strings.Contains(text, ".")
}

func parseInt(text string) (int64, error) {
	if strings.HasPrefix(text, "0x") {
		n, err := strconv.ParseUint(text[2:], 16, 64)
		return int64(n), err
	}
	return strconv.ParseInt(text, 10, 64)
}

func parseFloat(text string) (float32, error) {
	f, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid float literal %q: %w", text, err)
	}
	return float32(f), nil
}

func encodeI32(v int32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(v))
	return buf
}

func encodeF32(v float32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, math.Float32bits(v))
	return buf
}
