package models

// RemoteUpdate is the body of the posts/update endpoint.
type RemoteUpdate struct {
	UpdateTime string `json:"update_time"`
}

// RemotePost is one element of the posts/all endpoint. Tags are a single
// space-separated string and Shared is "yes" or "no".
type RemotePost struct {
	Href        string `json:"href"`
	Description string `json:"description"`
	Tags        string `json:"tags"`
	Shared      string `json:"shared"`
	Time        string `json:"time"`
}

// ToBookmark converts the wire form into a [Bookmark].
func (p RemotePost) ToBookmark() Bookmark {
	return Bookmark{
		URL:       p.Href,
		Title:     p.Description,
		Tags:      ParseTags(p.Tags),
		Shared:    p.Shared == "yes",
		CreatedAt: p.Time,
	}
}

// RemoteResult is the body of mutating endpoints such as posts/add.
type RemoteResult struct {
	ResultCode string `json:"result_code"`
}
