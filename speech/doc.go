// Package speech prepares extracted paragraphs for a speech synthesis
// engine.
//
// Engines limit how much text one request may carry. A [Segmenter] cuts
// each paragraph into segments under that limit, preferring sentence
// boundaries so that pauses fall where a reader would make them:
//
//	segments := speech.NewSegmenter(300).Split(paragraphs)
//	for _, s := range segments {
//	    engine.Speak(s.Text)
//	}
//
// Every segment keeps the index and page of its paragraph, so playback
// position can be mapped back to the document.
package speech
