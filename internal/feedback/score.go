package feedback

// Score compares guess against answer using the standard two-pass Wordle
// evaluation:
//
//	Pass 1: mark exact matches green and count the remaining answer letters.
//	Pass 2: for non-green letters, mark yellow while unused copies remain.
//
// Both words must be Size lowercase letters; anything else scores all gray.
func Score(guess, answer string) Pattern {
	var out Pattern
	if len(guess) != Size || len(answer) != Size {
		return out
	}

	var counts [26]int
	for i := 0; i < Size; i++ {
		if guess[i] == answer[i] {
			out[i] = Green
		} else if j := idx(answer[i]); j >= 0 {
			counts[j]++
		}
	}

	for i := 0; i < Size; i++ {
		if out[i] == Green {
			continue
		}
		if j := idx(guess[i]); j >= 0 && counts[j] > 0 {
			out[i] = Yellow
			counts[j]--
		}
	}
	return out
}

// idx maps a lowercase ASCII letter to 0..25, or -1.
func idx(c byte) int {
	if c < 'a' || c > 'z' {
		return -1
	}
	return int(c - 'a')
}
