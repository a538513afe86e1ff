// Package catalog holds static lookup data for the VoiceForge API: the
// curated default voices, audio output formats, synthesis models, and
// supported languages. The tables carry no logic and never change at runtime.
package catalog

import "sort"

// Default voice names mapped to their voice IDs. These are the curated
// voices every account can use without cloning.
var voices = map[string]string{
	"aria":    "JfqZjDadpjUpXTrWaTZl",
	"kestrel": "Xq28D2NpqvRmZkYtAicG",
	"marlow":  "TbWqFpR3jHnueYGcLVkd",
	"sylvie":  "Gm0cNZxcqkWpUdAfT2vB",
	"orion":   "Bd7hKmLwePzcXinHSJt9",
	"wren":    "Ms4yQvTJgbpDCazWkEoX",
	"calder":  "Vp2eRuGnYcqmKjdbZLw6",
	"imara":   "Hx9sWfBvMtLgQrkeCPn3",
}

// Audio output formats accepted by the output_format parameter.
var Formats = []string{
	"mp3_22050_32",
	"mp3_44100_64",
	"mp3_44100_128",
	"mp3_44100_192",
	"pcm_16000",
	"pcm_22050",
	"pcm_44100",
	"ulaw_8000",
}

// Synthesis models accepted by the model_id parameter.
var Models = []string{
	"forge_english_v1",
	"forge_multilingual_v2",
	"forge_turbo_v2",
	"forge_flash_v2",
}

// Languages supported by the multilingual models, as ISO 639-1 codes.
var Languages = []string{
	"en", "de", "es", "fr", "it", "ja", "ko",
	"nl", "pl", "pt", "ru", "sv", "tr", "zh",
}

// DefaultFormat is the output format used when none is specified.
const DefaultFormat = "mp3_44100_128"

// DefaultModel is the synthesis model used when none is specified.
const DefaultModel = "forge_multilingual_v2"

// DefaultVoice is the voice name the CLI falls back to.
const DefaultVoice = "aria"

// VoiceID resolves a curated voice name to its voice ID.
func VoiceID(name string) (string, bool) {
	id, ok := voices[name]
	return id, ok
}

// VoiceNames returns the curated voice names in sorted order.
func VoiceNames() []string {
	names := make([]string, 0, len(voices))
	for name := range voices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
