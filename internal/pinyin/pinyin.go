// Package pinyin renders CC-CEDICT numbered pinyin with tone marks and
// provides fallback readings for text missing from the lexicon.
package pinyin

import (
	"strings"

	gopinyin "github.com/mozillazg/go-pinyin"
)

// toneMarks maps a base vowel to its tone-marked forms, indexed by tone-1.
var toneMarks = map[rune][4]rune{
	'a': {'ā', 'á', 'ǎ', 'à'},
	'e': {'ē', 'é', 'ě', 'è'},
	'i': {'ī', 'í', 'ǐ', 'ì'},
	'o': {'ō', 'ó', 'ǒ', 'ò'},
	'u': {'ū', 'ú', 'ǔ', 'ù'},
	'ü': {'ǖ', 'ǘ', 'ǚ', 'ǜ'},
	'A': {'Ā', 'Á', 'Ǎ', 'À'},
	'E': {'Ē', 'É', 'Ě', 'È'},
	'I': {'Ī', 'Í', 'Ǐ', 'Ì'},
	'O': {'Ō', 'Ó', 'Ǒ', 'Ò'},
	'U': {'Ū', 'Ú', 'Ǔ', 'Ù'},
	'Ü': {'Ǖ', 'Ǘ', 'Ǚ', 'Ǜ'},
}

// Tone returns the tone number of a numbered syllable: 1-4 from a trailing
// digit, 5 for the neutral tone (trailing 5 or no digit), 0 when the
// syllable is empty.
func Tone(syllable string) int {
	if syllable == "" {
		return 0
	}
	switch syllable[len(syllable)-1] {
	case '1':
		return 1
	case '2':
		return 2
	case '3':
		return 3
	case '4':
		return 4
	default:
		return 5
	}
}

// MarkSyllable converts one numbered syllable to its tone-marked form:
// "jia1" becomes "jiā", "lu:4" becomes "lǜ", "ma5" becomes "ma".
// Syllables without a trailing digit pass through apart from the
// "u:" to "ü" rewrite.
func MarkSyllable(syllable string) string {
	tone := Tone(syllable)

	body := strings.TrimRight(syllable, "012345")
	body = strings.ReplaceAll(body, "u:", "ü")
	body = strings.ReplaceAll(body, "U:", "Ü")

	if tone < 1 || tone > 4 {
		return body
	}

	runes := []rune(body)
	idx := markIndex(runes)
	if idx < 0 {
		return body
	}
	if marked, ok := toneMarks[runes[idx]]; ok {
		runes[idx] = marked[tone-1]
	}
	return string(runes)
}

// markIndex picks the vowel that carries the tone mark: a or e when
// present, the o of "ou", otherwise the last vowel.
func markIndex(runes []rune) int {
	last := -1
	for i, r := range runes {
		switch r {
		case 'a', 'e', 'A', 'E':
			return i
		case 'o', 'O':
			if i+1 < len(runes) && (runes[i+1] == 'u' || runes[i+1] == 'U') {
				return i
			}
			last = i
		case 'i', 'u', 'ü', 'I', 'U', 'Ü':
			last = i
		}
	}
	return last
}

// Mark converts a whole CC-CEDICT reading ("jia1 ju4") to tone-marked
// display form ("jiā jù").
func Mark(reading string) string {
	syllables := strings.Fields(reading)
	for i, s := range syllables {
		syllables[i] = MarkSyllable(s)
	}
	return strings.Join(syllables, " ")
}

// Readings returns all tone-marked readings of a single character, for
// characters that have no entry of their own in the lexicon. It returns nil
// for non-Chinese input.
func Readings(char string) []string {
	args := gopinyin.NewArgs()
	args.Style = gopinyin.Tone
	args.Heteronym = true

	result := gopinyin.Pinyin(char, args)
	if len(result) == 0 {
		return nil
	}
	return result[0]
}
