// Package emojiindex maps standard Unicode emoji literals to and from
// their Discord short code names. It backs colon-coded emoji parsing
// (":thinking:") and short-code display of standard emoji.
//
// The table covers the common subset of Discord's emoji names; an
// unlisted code simply fails the lookup, which parsers treat as plain
// text.
package emojiindex

// codeToEmoji is the primary table; the reverse map is derived in init.
var codeToEmoji = map[string]string{
	"grinning":                 "\U0001F600",
	"smiley":                   "\U0001F603",
	"smile":                    "\U0001F604",
	"grin":                     "\U0001F601",
	"laughing":                 "\U0001F606",
	"joy":                      "\U0001F602",
	"rofl":                     "\U0001F923",
	"slight_smile":             "\U0001F642",
	"upside_down":              "\U0001F643",
	"wink":                     "\U0001F609",
	"blush":                    "\U0001F60A",
	"innocent":                 "\U0001F607",
	"heart_eyes":               "\U0001F60D",
	"kissing_heart":            "\U0001F618",
	"thinking":                 "\U0001F914",
	"neutral_face":             "\U0001F610",
	"expressionless":           "\U0001F611",
	"smirk":                    "\U0001F60F",
	"unamused":                 "\U0001F612",
	"rolling_eyes":             "\U0001F644",
	"grimacing":                "\U0001F62C",
	"relieved":                 "\U0001F60C",
	"pensive":                  "\U0001F614",
	"sleeping":                 "\U0001F634",
	"sunglasses":               "\U0001F60E",
	"nerd":                     "\U0001F913",
	"confused":                 "\U0001F615",
	"slight_frown":             "\U0001F641",
	"frowning2":                "☹",
	"open_mouth":               "\U0001F62E",
	"astonished":               "\U0001F632",
	"flushed":                  "\U0001F633",
	"scream":                   "\U0001F631",
	"cry":                      "\U0001F622",
	"sob":                      "\U0001F62D",
	"sweat_smile":              "\U0001F605",
	"rage":                     "\U0001F621",
	"angry":                    "\U0001F620",
	"skull":                    "\U0001F480",
	"poop":                     "\U0001F4A9",
	"clown":                    "\U0001F921",
	"ghost":                    "\U0001F47B",
	"alien":                    "\U0001F47D",
	"robot":                    "\U0001F916",
	"heart":                    "❤️",
	"orange_heart":             "\U0001F9E1",
	"yellow_heart":             "\U0001F49B",
	"green_heart":              "\U0001F49A",
	"blue_heart":               "\U0001F499",
	"purple_heart":             "\U0001F49C",
	"black_heart":              "\U0001F5A4",
	"broken_heart":             "\U0001F494",
	"sparkling_heart":          "\U0001F496",
	"two_hearts":               "\U0001F495",
	"fire":                     "\U0001F525",
	"sparkles":                 "✨",
	"star":                     "⭐",
	"star2":                    "\U0001F31F",
	"zap":                      "⚡",
	"boom":                     "\U0001F4A5",
	"snowflake":                "❄️",
	"sunny":                    "☀️",
	"cloud":                    "☁️",
	"rainbow":                  "\U0001F308",
	"thumbsup":                 "\U0001F44D",
	"thumbsdown":               "\U0001F44E",
	"ok_hand":                  "\U0001F44C",
	"clap":                     "\U0001F44F",
	"wave":                     "\U0001F44B",
	"raised_hands":             "\U0001F64C",
	"pray":                     "\U0001F64F",
	"muscle":                   "\U0001F4AA",
	"point_up":                 "☝",
	"point_right":              "\U0001F449",
	"point_left":               "\U0001F448",
	"eyes":                     "\U0001F440",
	"brain":                    "\U0001F9E0",
	"tada":                     "\U0001F389",
	"confetti_ball":            "\U0001F38A",
	"balloon":                  "\U0001F388",
	"gift":                     "\U0001F381",
	"trophy":                   "\U0001F3C6",
	"medal":                    "\U0001F3C5",
	"crown":                    "\U0001F451",
	"gem":                      "\U0001F48E",
	"money_with_wings":         "\U0001F4B8",
	"rocket":                   "\U0001F680",
	"airplane":                 "✈️",
	"car":                      "\U0001F697",
	"warning":                  "⚠️",
	"no_entry":                 "⛔",
	"white_check_mark":         "✅",
	"x":                        "❌",
	"question":                 "❓",
	"exclamation":              "❗",
	"100":                      "\U0001F4AF",
	"pizza":                    "\U0001F355",
	"hamburger":                "\U0001F354",
	"coffee":                   "☕",
	"beer":                     "\U0001F37A",
	"cake":                     "\U0001F370",
	"dog":                      "\U0001F436",
	"cat":                      "\U0001F431",
	"fox":                      "\U0001F98A",
	"bear":                     "\U0001F43B",
	"panda_face":               "\U0001F43C",
	"eagle":                    "\U0001F985",
	"snake":                    "\U0001F40D",
	"turtle":                   "\U0001F422",
	"crab":                     "\U0001F980",
	"whale":                    "\U0001F433",
	"ocean":                    "\U0001F30A",
	"earth_africa":             "\U0001F30D",
	"moon":                     "\U0001F314",
	"computer":                 "\U0001F4BB",
	"keyboard":                 "⌨️",
	"bulb":                     "\U0001F4A1",
	"lock":                     "\U0001F512",
	"key":                      "\U0001F511",
	"hammer":                   "\U0001F528",
	"wrench":                   "\U0001F527",
	"gear":                     "⚙️",
	"envelope":                 "✉️",
	"inbox_tray":               "\U0001F4E5",
	"outbox_tray":              "\U0001F4E4",
	"package":                  "\U0001F4E6",
	"memo":                     "\U0001F4DD",
	"book":                     "\U0001F4D6",
	"bookmark":                 "\U0001F516",
	"link":                     "\U0001F517",
	"paperclip":                "\U0001F4CE",
	"scissors":                 "✂️",
	"alarm_clock":              "⏰",
	"hourglass":                "⌛",
	"speaker":                  "\U0001F508",
	"loud_sound":               "\U0001F50A",
	"mute":                     "\U0001F507",
	"bell":                     "\U0001F514",
	"musical_note":             "\U0001F3B5",
	"microphone":               "\U0001F3A4",
	"headphones":               "\U0001F3A7",
	"video_game":               "\U0001F3AE",
	"game_die":                 "\U0001F3B2",
	"dart":                     "\U0001F3AF",
	"soccer":                   "⚽",
	"basketball":               "\U0001F3C0",
	"checkered_flag":           "\U0001F3C1",
	"regional_indicator_a":     "\U0001F1E6",
	"regional_indicator_z":     "\U0001F1FF",
	"one":                      "1️⃣",
	"two":                      "2️⃣",
	"three":                    "3️⃣",
	"arrow_right":              "➡️",
	"arrow_left":               "⬅️",
	"arrow_up":                 "⬆️",
	"arrow_down":               "⬇️",
	"recycle":                  "♻️",
	"peace":                    "☮️",
	"yin_yang":                 "☯️",
	"copyright":                "©️",
	"registered":               "®️",
	"tm":                       "™️",
}

var emojiToCode = make(map[string]string, len(codeToEmoji))

func init() {
	for code, emoji := range codeToEmoji {
		emojiToCode[emoji] = code
	}
}

// FromCode resolves a short code name to its emoji literal.
func FromCode(code string) (string, bool) {
	emoji, ok := codeToEmoji[code]
	return emoji, ok
}

// ToCode resolves an emoji literal to its short code name.
func ToCode(emoji string) (string, bool) {
	code, ok := emojiToCode[emoji]
	return code, ok
}
