// Package sentex extracts sentences from text by locating terminator symbols
// such as '.', '?' and '!'.
//
// # Quick Start
//
//	ext, err := sentex.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sentences, rest := ext.Extract("Hello world. How are you? Fine!", nil)
//	for _, s := range sentences {
//	    fmt.Printf("%q\n", s.Text)
//	}
//	fmt.Printf("remainder: %q\n", rest)
//
// # Streaming
//
// ExtractWithoutLast holds back a sentence whose terminator is the very last
// character of the text seen so far, since the next chunk of input may still
// continue it. Callers prepend the returned remainder to the next chunk.
// ExtractLines does this for an io.Reader, one physical line at a time.
//
// # Thread Safety
//
// Extractor and Matcher are immutable after construction and safe for
// concurrent use.
//
// # Limitations
//
// Boundaries are found by literal symbol matching only. Abbreviations,
// decimal numbers and quoted speech are not disambiguated.
package sentex
