package s3uri

import "testing"

func TestParseBucket(t *testing.T) {
	tests := []struct {
		uri     string
		want    string
		wantErr bool
	}{
		{"s3://my-bucket", "my-bucket", false},
		{"s3://my-bucket/", "my-bucket", false},
		{"s3://my-bucket/key", "", true},
		{"s3://", "", true},
		{"my-bucket", "", true},
	}

	for _, tt := range tests {
		got, err := ParseBucket(tt.uri)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseBucket(%q) error = %v, wantErr %v", tt.uri, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBucket(%q) = %q, want %q", tt.uri, got, tt.want)
		}
	}
}
