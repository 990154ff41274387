// package formatter provides functions to export episode data to various formats (Markdown, plain text, JSON)
package formatter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/desertthunder/podx/internal/models"
	"github.com/desertthunder/podx/internal/shared"
)

// episodeTitle falls back to the job ID when an episode has no title.
func episodeTitle(ep *models.Episode) string {
	if ep.Title != "" {
		return ep.Title
	}
	if ep.JobID != "" {
		return fmt.Sprintf("Episode %s", ep.JobID)
	}
	return "Untitled Episode"
}

// ExportToMarkdown converts an Episode to Markdown show notes with an optional local audio link
func ExportToMarkdown(ep *models.Episode, audioFilename string) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", episodeTitle(ep)))

	buf.WriteString(fmt.Sprintf("**Job**: %s\n", ep.JobID))
	if ep.Style != "" {
		buf.WriteString(fmt.Sprintf("**Style**: %s\n", ep.Style))
	}
	if ep.Plan != "" {
		buf.WriteString(fmt.Sprintf("**Plan**: %s\n", ep.Plan))
	}
	if ep.Duration > 0 {
		buf.WriteString(fmt.Sprintf("**Duration**: %s\n", shared.FormatDuration(ep.Duration)))
	}
	if !ep.GeneratedAt.IsZero() {
		buf.WriteString(fmt.Sprintf("**Generated**: %s\n", ep.GeneratedAt.Format(time.DateOnly)))
	}

	buf.WriteString("\n## Audio\n\n")
	if audioFilename != "" {
		buf.WriteString(fmt.Sprintf("[Listen](%s)\n", audioFilename))
	}
	if ep.AudioURL != "" {
		buf.WriteString(fmt.Sprintf("Stream: %s\n", ep.AudioURL))
	}
	if audioFilename == "" && ep.AudioURL == "" {
		buf.WriteString("No audio available.\n")
	}

	return buf.Bytes(), nil
}

// ExportToText converts an Episode to plain text format
func ExportToText(ep *models.Episode) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Episode: %s\n", episodeTitle(ep)))
	buf.WriteString(fmt.Sprintf("Job: %s\n", ep.JobID))
	if ep.Style != "" {
		buf.WriteString(fmt.Sprintf("Style: %s\n", ep.Style))
	}
	if ep.Plan != "" {
		buf.WriteString(fmt.Sprintf("Plan: %s\n", ep.Plan))
	}
	if ep.Duration > 0 {
		buf.WriteString(fmt.Sprintf("Duration: %s\n", shared.FormatDuration(ep.Duration)))
	}
	if ep.AudioURL != "" {
		buf.WriteString(fmt.Sprintf("Audio: %s\n", ep.AudioURL))
	}
	if ep.AudioPath != "" {
		buf.WriteString(fmt.Sprintf("File: %s\n", ep.AudioPath))
	}

	return buf.Bytes(), nil
}

// ToEpisodeJSON generates a JSON representation of episode metadata
func ToEpisodeJSON(ep models.Episode) ([]byte, error) {
	return shared.MarshalJSON(ep, true)
}

// DownloadAudio downloads the audio file at the given URL and returns the raw bytes
func DownloadAudio(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("empty URL provided")
	}

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download audio: status %d", resp.StatusCode)
	}

	audioData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}

	return audioData, nil
}

// SaveAudio downloads the audio file at the given URL and writes it to path,
// creating parent directories as needed. Returns the saved path.
func SaveAudio(ctx context.Context, url, path string) (string, error) {
	data, err := DownloadAudio(ctx, url)
	if err != nil {
		return "", err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write audio file: %w", err)
	}

	return path, nil
}

// EpisodeExportResult contains information about files created by WriteEpisodeExport
type EpisodeExportResult struct {
	Directory string
	Files     []string
	AudioFile string
}

// WriteEpisodeExport exports an episode to a dedicated directory.
//
// Directory name defaults to the job ID.
// Creates {dir}/README.md and {dir}/episode.json, and copies the episode's
// local audio file into the directory when it has one.
func WriteEpisodeExport(ep *models.Episode, outputDir string) (*EpisodeExportResult, error) {
	if outputDir == "" {
		outputDir = ep.JobID
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	result := &EpisodeExportResult{
		Directory: outputDir,
		Files:     []string{},
	}

	var audioFilename string
	if ep.AudioPath != "" {
		data, err := os.ReadFile(ep.AudioPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to read audio file: %v\n", err)
		} else {
			audioFilename = filepath.Base(ep.AudioPath)
			audioPath := filepath.Join(outputDir, audioFilename)
			if err := os.WriteFile(audioPath, data, 0644); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to copy audio file: %v\n", err)
				audioFilename = ""
			} else {
				result.AudioFile = audioPath
				result.Files = append(result.Files, audioPath)
			}
		}
	}

	mdData, err := ExportToMarkdown(ep, audioFilename)
	if err != nil {
		return nil, fmt.Errorf("failed to generate Markdown: %w", err)
	}

	mdFile := filepath.Join(outputDir, "README.md")
	if err := os.WriteFile(mdFile, mdData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write Markdown file: %w", err)
	}
	result.Files = append(result.Files, mdFile)

	episodeJSON, err := ToEpisodeJSON(*ep)
	if err != nil {
		return nil, fmt.Errorf("failed to generate episode JSON: %w", err)
	}

	jsonFile := filepath.Join(outputDir, "episode.json")
	if err := os.WriteFile(jsonFile, episodeJSON, 0644); err != nil {
		return nil, fmt.Errorf("failed to write episode JSON: %w", err)
	}
	result.Files = append(result.Files, jsonFile)

	return result, nil
}

// WriteTextExport exports an episode's show notes to plain text.
//
// Defaults to {jobID}_notes.txt as the filename.
func WriteTextExport(ep *models.Episode, filepath string) (string, error) {
	if filepath == "" {
		filepath = fmt.Sprintf("%s_notes.txt", ep.JobID)
	}

	textData, err := ExportToText(ep)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if err := os.WriteFile(filepath, textData, 0644); err != nil {
		return "", fmt.Errorf("failed to write text file: %w", err)
	}

	return filepath, nil
}

// WriteJSONExport exports episode metadata to a JSON file.
//
// Defaults to {jobID}.json as the filename.
func WriteJSONExport(ep *models.Episode, filepath string) (string, error) {
	if filepath == "" {
		filepath = fmt.Sprintf("%s.json", ep.JobID)
	}

	jsonData, err := ToEpisodeJSON(*ep)
	if err != nil {
		return "", fmt.Errorf("failed to generate JSON: %w", err)
	}

	if err := os.WriteFile(filepath, jsonData, 0644); err != nil {
		return "", fmt.Errorf("failed to write JSON file: %w", err)
	}

	return filepath, nil
}
