package entity

// GenerateLyricsRequest is the payload for POST /songs/lyrics
type GenerateLyricsRequest struct {
	ProjectID string `json:"projectId"`
	Prompt    string `json:"prompt"`
	Genre     string `json:"genre"`
}

type GenerateLyricsResponse struct {
	Lyrics string `json:"lyrics"`
}

// CreateSongRequest is the payload for POST /songs
type CreateSongRequest struct {
	ProjectID string `json:"projectId"`
	Title     string `json:"title"`
	Genre     string `json:"genre"`
	Prompt    string `json:"prompt"`
	Lyrics    string `json:"lyrics"`
}

type ListSongsResponse struct {
	Songs []*Song `json:"songs"`
}
