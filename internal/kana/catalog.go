package kana

import "fmt"

// Romanizations shared by both scripts, in gojūon order.
var (
	romajiBasic = []string{
		"a", "i", "u", "e", "o",
		"ka", "ki", "ku", "ke", "ko",
		"sa", "shi", "su", "se", "so",
		"ta", "chi", "tsu", "te", "to",
		"na", "ni", "nu", "ne", "no",
		"ha", "hi", "fu", "he", "ho",
		"ma", "mi", "mu", "me", "mo",
		"ya", "yu", "yo",
		"ra", "ri", "ru", "re", "ro",
		"wa", "wo", "n",
	}
	romajiDakuten = []string{
		"ga", "gi", "gu", "ge", "go",
		"za", "ji", "zu", "ze", "zo",
		"da", "ji", "zu", "de", "do",
		"ba", "bi", "bu", "be", "bo",
		"pa", "pi", "pu", "pe", "po",
	}
	romajiYouon = []string{
		"kya", "kyu", "kyo",
		"sha", "shu", "sho",
		"cha", "chu", "cho",
		"nya", "nyu", "nyo",
		"hya", "hyu", "hyo",
		"mya", "myu", "myo",
		"rya", "ryu", "ryo",
		"gya", "gyu", "gyo",
		"ja", "ju", "jo",
		"bya", "byu", "byo",
		"pya", "pyu", "pyo",
	}
)

var (
	hiraganaBasic = []string{
		"あ", "い", "う", "え", "お",
		"か", "き", "く", "け", "こ",
		"さ", "し", "す", "せ", "そ",
		"た", "ち", "つ", "て", "と",
		"な", "に", "ぬ", "ね", "の",
		"は", "ひ", "ふ", "へ", "ほ",
		"ま", "み", "む", "め", "も",
		"や", "ゆ", "よ",
		"ら", "り", "る", "れ", "ろ",
		"わ", "を", "ん",
	}
	hiraganaDakuten = []string{
		"が", "ぎ", "ぐ", "げ", "ご",
		"ざ", "じ", "ず", "ぜ", "ぞ",
		"だ", "ぢ", "づ", "で", "ど",
		"ば", "び", "ぶ", "べ", "ぼ",
		"ぱ", "ぴ", "ぷ", "ぺ", "ぽ",
	}
	hiraganaYouon = []string{
		"きゃ", "きゅ", "きょ",
		"しゃ", "しゅ", "しょ",
		"ちゃ", "ちゅ", "ちょ",
		"にゃ", "にゅ", "にょ",
		"ひゃ", "ひゅ", "ひょ",
		"みゃ", "みゅ", "みょ",
		"りゃ", "りゅ", "りょ",
		"ぎゃ", "ぎゅ", "ぎょ",
		"じゃ", "じゅ", "じょ",
		"びゃ", "びゅ", "びょ",
		"ぴゃ", "ぴゅ", "ぴょ",
	}
)

var (
	katakanaBasic = []string{
		"ア", "イ", "ウ", "エ", "オ",
		"カ", "キ", "ク", "ケ", "コ",
		"サ", "シ", "ス", "セ", "ソ",
		"タ", "チ", "ツ", "テ", "ト",
		"ナ", "ニ", "ヌ", "ネ", "ノ",
		"ハ", "ヒ", "フ", "ヘ", "ホ",
		"マ", "ミ", "ム", "メ", "モ",
		"ヤ", "ユ", "ヨ",
		"ラ", "リ", "ル", "レ", "ロ",
		"ワ", "ヲ", "ン",
	}
	katakanaDakuten = []string{
		"ガ", "ギ", "グ", "ゲ", "ゴ",
		"ザ", "ジ", "ズ", "ゼ", "ゾ",
		"ダ", "ヂ", "ヅ", "デ", "ド",
		"バ", "ビ", "ブ", "ベ", "ボ",
		"パ", "ピ", "プ", "ペ", "ポ",
	}
	katakanaYouon = []string{
		"キャ", "キュ", "キョ",
		"シャ", "シュ", "ショ",
		"チャ", "チュ", "チョ",
		"ニャ", "ニュ", "ニョ",
		"ヒャ", "ヒュ", "ヒョ",
		"ミャ", "ミュ", "ミョ",
		"リャ", "リュ", "リョ",
		"ギャ", "ギュ", "ギョ",
		"ジャ", "ジュ", "ジョ",
		"ビャ", "ビュ", "ビョ",
		"ピャ", "ピュ", "ピョ",
	}
)

// Catalog is the fixed table of all kana entries. Hiragana first, then
// katakana, each in basic → dakuten → yōon order. Entry IDs are stable
// across releases; the mistake store depends on that.
var Catalog = buildCatalog()

func buildCatalog() []Entry {
	var out []Entry
	out = append(out, makeSet(hiraganaBasic, romajiBasic, Hiragana, Basic)...)
	out = append(out, makeSet(hiraganaDakuten, romajiDakuten, Hiragana, Dakuten)...)
	out = append(out, makeSet(hiraganaYouon, romajiYouon, Hiragana, Youon)...)
	out = append(out, makeSet(katakanaBasic, romajiBasic, Katakana, Basic)...)
	out = append(out, makeSet(katakanaDakuten, romajiDakuten, Katakana, Dakuten)...)
	out = append(out, makeSet(katakanaYouon, romajiYouon, Katakana, Youon)...)
	return out
}

func makeSet(chars, romajis []string, script Script, category Category) []Entry {
	if len(chars) != len(romajis) {
		panic(fmt.Sprintf("kana: %s %s character/romaji length mismatch (%d vs %d)",
			script, category, len(chars), len(romajis)))
	}
	entries := make([]Entry, len(chars))
	for i, c := range chars {
		entries[i] = Entry{
			ID:       fmt.Sprintf("%s_%s_%d", script, category, i),
			Char:     c,
			Romaji:   romajis[i],
			Script:   script,
			Category: category,
		}
	}
	return entries
}
