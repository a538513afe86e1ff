// Package voiceforge provides a Go client SDK for the VoiceForge
// text-to-speech API.
//
// The SDK authenticates with an API key, lists and manages voices, and
// synthesizes speech either buffered or as a live audio stream.
//
// Basic usage:
//
//	client, err := voiceforge.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	audio, err := client.GenerateSpeech(ctx, voiceforge.SpeechRequest{
//	    Text:    "Hello from VoiceForge",
//	    VoiceID: "JfqZjDadpjUpXTrWaTZl",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	os.WriteFile("output.mp3", audio, 0o644)
//
// Long-form synthesis can be streamed straight to disk:
//
//	path, err := client.StreamSpeechToFile(ctx, req, "output.mp3")
package voiceforge
