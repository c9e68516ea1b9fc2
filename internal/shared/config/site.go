package config

import "fmt"

// Site holds the fixed site-generation settings. Built once at startup and
// passed explicitly; nothing in here is mutated after construction.
type Site struct {
	Bucket      string
	WebsiteBase string
	FontsURL    string
	IndexFile   string
	OutputDir   string
	Excludes    []string
}

const (
	DefaultBucket = "sal-topic-registry"
	IndexFile     = "index.html"
)

func DefaultSite() Site {
	return Site{
		Bucket:      DefaultBucket,
		WebsiteBase: WebsiteEndpoint(DefaultBucket),
		FontsURL:    "http://fonts.googleapis.com/css?family=Raleway:subset=latin",
		IndexFile:   IndexFile,
		OutputDir:   "website",
		Excludes:    []string{IndexFile, "css", "images", ".gitignore"},
	}
}

// WebsiteEndpoint returns the S3 static-website endpoint for a bucket.
func WebsiteEndpoint(bucket string) string {
	return fmt.Sprintf("http://%s.s3-website-us-west-2.amazonaws.com", bucket)
}
