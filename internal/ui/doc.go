// Package ui implements the episode creation wizard as an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI walks a seven step flow:
//  1. Welcome : Call to action
//  2. Sources : Pick source documents and paste article URLs
//  3. Customize : Analogies plus an optional emphasis field
//  4. Style : Conversation tone preset
//  5. Plan : Generation tier
//  6. Generating : Live engine progress
//  7. Result : Playback transport for the finished episode
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern. Step transitions all go
// through the wizard state machine, so gating rules stay out of the view layer. Progress updates flow through
// a channel from the episode engine, providing non-blocking status reporting during generation; playback
// state arrives the same way from the media backend's event channel.
//
// Keyboard navigation is modal: text widgets own most keys while focused (esc hands control back to step
// navigation, tab cycles fields) with contextual help displayed via charmbracelet/bubbles/help.
package ui
