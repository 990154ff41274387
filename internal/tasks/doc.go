// Package tasks orchestrates podcast generation runs with real-time progress
// reporting.
//
// # Operations
//
// The [Engine] interface defines three operations:
//
//  1. [Engine.Generate] : Full generation run
//     - Validates the request (at least one source, supported uploads, known style and plan)
//     - Submits it to the backend and records the accepted job id
//     - Polls status until the job is ready or failed
//     - Returns the terminal job with timing and poll counts
//
//  2. [Engine.Await] : Poll an already submitted job
//     - Paces polls with a rate limiter (policy interval)
//     - Caps total waiting at the policy timeout
//     - Tolerates a bounded number of consecutive status failures
//
//  3. [Engine.Download] : Fetch finished episode audio
//     - Resolves relative audio urls against the backend base url
//     - Saves the file as {job id}.mp3 in the requested directory
//
// # Progress
//
// Every operation takes an optional progress channel and sends
// [ProgressUpdate] values as it moves through its phases. Sends go through a
// select with a default case: a slow or absent consumer never stalls the run,
// it just misses updates.
//
// # Polling Bounds
//
// [PollPolicy] carries the three bounds (interval, timeout, max consecutive
// failures); zero values fall back to [DefaultPollPolicy]. A timeout
// surfaces as [shared.ErrPollTimeout], a failed job or exhausted failure
// budget as [shared.ErrGenerationFailed], and context cancellation
// propagates unchanged so callers can distinguish teardown from failure.
//
// [EpisodeEngine] is the concrete implementation, built on a
// [services.Generator] for backend calls and a [PollPolicy] from
// configuration.
package tasks
