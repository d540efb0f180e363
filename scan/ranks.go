package scan

// binaryRank scores how common each byte value is in typical scan targets
// (process dumps, executable images). Lower rank = rarer byte = better
// anchor for a filtering scanner. The values are heuristic: zero and
// small integers dominate real dumps, printable ASCII rides on embedded
// strings, and a handful of x86 opcode bytes (mov, call, ret, int3
// padding) punch far above their neighbors.
var binaryRank = [256]byte{
	// 0x00-0x0F: zero fill and small integers dominate dumps
	255, 235, 225, 220, 222, 210, 208, 205, 218, 202, 200, 195, 198, 192, 190, 188,
	// 0x10-0x1F: small values, still frequent
	185, 170, 168, 165, 166, 160, 158, 155, 162, 152, 150, 148, 151, 146, 144, 142,
	// 0x20-0x2F: space and path punctuation from embedded strings
	190, 96, 110, 84, 88, 90, 92, 95, 128, 126, 118, 104, 122, 134, 140, 120,
	// 0x30-0x3F: digits, then sparse punctuation
	174, 164, 156, 149, 147, 145, 139, 137, 143, 141, 108, 82, 76, 112, 74, 86,
	// 0x40-0x4F: uppercase letters
	70, 136, 114, 133, 131, 138, 106, 94, 100, 129, 66, 78, 124, 116, 127, 121,
	// 0x50-0x5F: uppercase tail; underscore is common in symbol names
	113, 58, 123, 130, 125, 109, 89, 85, 72, 68, 62, 91, 87, 93, 60, 135,
	// 0x60-0x6F: lowercase letters
	54, 186, 132, 154, 157, 189, 119, 102, 117, 178, 56, 64, 176, 153, 184, 180,
	// 0x70-0x7F: lowercase tail
	146, 52, 179, 177, 182, 159, 98, 101, 107, 103, 50, 48, 69, 47, 44, 73,
	// 0x80-0x8F: mov-family opcodes lift 0x88/0x89/0x8B
	120, 105, 99, 97, 111, 95, 93, 90, 142, 140, 88, 145, 105, 83, 81, 146,
	// 0x90-0x9F: nop padding lifts 0x90
	136, 79, 77, 75, 71, 67, 65, 63, 70, 61, 59, 57, 55, 53, 51, 49,
	// 0xA0-0xAF: rare in code and data alike
	46, 45, 43, 42, 41, 40, 39, 38, 44, 37, 36, 35, 34, 33, 32, 31,
	// 0xB0-0xBF: rare
	30, 29, 28, 27, 26, 25, 24, 23, 28, 22, 21, 20, 19, 18, 17, 16,
	// 0xC0-0xCF: ret (0xC3) and int3 padding (0xCC) stand out
	38, 36, 78, 158, 34, 33, 68, 96, 31, 29, 28, 26, 170, 24, 22, 20,
	// 0xD0-0xDF: rare
	18, 17, 16, 15, 15, 14, 14, 13, 20, 13, 12, 12, 11, 11, 10, 10,
	// 0xE0-0xEF: call (0xE8) and jmp (0xE9) stand out
	25, 19, 16, 14, 12, 10, 9, 9, 174, 152, 8, 21, 8, 7, 7, 6,
	// 0xF0-0xFF: 0xFF fill and the two-byte opcode escape
	30, 5, 5, 23, 4, 4, 3, 3, 40, 3, 2, 2, 26, 2, 45, 250,
}

// BinaryRank exposes the default rank table (read-only copy). To tune
// anchor selection for a specific corpus, use BuildRankTable instead.
var BinaryRank = binaryRank

// BuildRankTable builds a byte frequency table from a corpus sample,
// mapping each byte to a 0..255 rank proportional to its share of the
// corpus. Pass the actual haystack to make rare-byte anchoring exact for
// it.
func BuildRankTable(corpus []byte) [256]byte {
	var counts [256]int
	for _, c := range corpus {
		counts[c]++
	}

	maxCount := 1
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	var ranks [256]byte
	for i := range ranks {
		ranks[i] = byte((counts[i] * 255) / maxCount)
	}
	return ranks
}

// selectRare picks the fixed pattern position whose byte ranks rarest.
// Wildcard positions are never eligible. Patterns fix at least one byte,
// so there is always a winner.
func selectRare(p Pattern, ranks []byte) (rare byte, off int) {
	best := 256
	for i, c := range p.Bytes {
		if !p.Fixed(i) {
			continue
		}
		if r := int(ranks[c]); r < best {
			best = r
			rare, off = c, i
		}
	}
	return rare, off
}
