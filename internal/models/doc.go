// Package models defines domain entities for the podx podcast studio.
//
// The package contains plain data transfer objects exchanged with the
// generation backend and between internal layers:
//
//   - [SourceFile] : An uploaded source document with size/extension validation
//   - [GenerationRequest] : The payload for POST /generate_podcast
//   - [Job] : A generation job with its [JobState] lifecycle
//   - [Episode] : A finished podcast ready for playback and export
//
// Two small enumerations carry the wizard's vocabulary: [Style] (the tone
// preset) and [Plan] (the generation tier, stingy = basic, sigma = premium).
// Both reject unknown values through their Valid methods, so invalid
// selections never reach the wire.
package models
