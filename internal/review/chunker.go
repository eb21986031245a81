package review

// Split cuts s into fixed-size windows over its rune sequence, so multi-byte
// characters in a diff never get cut in half. The last window may be short.
// A non-positive size returns the whole input as a single chunk.
func Split(s string, size int) []string {
	if s == "" {
		return nil
	}
	if size <= 0 {
		return []string{s}
	}

	runes := []rune(s)
	chunks := make([]string, 0, (len(runes)+size-1)/size)
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
