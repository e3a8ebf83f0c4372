package importer

import (
	"bytes"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/cwbudde/frst/internal/langerr"
)

// detectAndDecodeFile reads a module source file and decodes it to a UTF-8
// string, sniffing a leading BOM (UTF-8, UTF-16 LE, UTF-16 BE) and falling
// back to byte-promotion for anything else that isn't already valid UTF-8.
// Adapted from the interpreter's own source-loading decoder.
func detectAndDecodeFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", langerr.User("failed to read module file %s: %s", path, err.Error())
	}

	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return string(data[3:]), nil
	}
	if len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE {
		return decodeUTF16(data, unicode.LittleEndian)
	}
	if len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF {
		return decodeUTF16(data, unicode.BigEndian)
	}
	if utf8.Valid(data) {
		return string(data), nil
	}

	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes), nil
}

func decodeUTF16(data []byte, endianness unicode.Endianness) (string, error) {
	decoder := unicode.UTF16(endianness, unicode.UseBOM).NewDecoder()
	utf8Data, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", langerr.User("failed to decode UTF-16 module source: %s", err.Error())
	}
	if len(utf8Data) >= 3 && utf8Data[0] == 0xEF && utf8Data[1] == 0xBB && utf8Data[2] == 0xBF {
		utf8Data = utf8Data[3:]
	}
	result := bytes.TrimPrefix(utf8Data, []byte("﻿"))
	return string(result), nil
}
