package task

import (
	"testing"
)

func TestEncodeField(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text unchanged",
			input: "Buy milk",
			want:  "Buy milk",
		},
		{
			name:  "comma becomes semicolon",
			input: "eggs, milk, bread",
			want:  "eggs; milk; bread",
		},
		{
			name:  "newline becomes space",
			input: "line one\nline two",
			want:  "line one line two",
		},
		{
			name:  "carriage return becomes space",
			input: "a\r\nb",
			want:  "a  b",
		},
		{
			name:  "existing semicolon kept",
			input: "a;b",
			want:  "a;b",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "unicode untouched",
			input: "Kaufen, Müsli",
			want:  "Kaufen; Müsli",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeField(tt.input)
			if got != tt.want {
				t.Errorf("EncodeField(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEncodeRecord(t *testing.T) {
	tests := []struct {
		name string
		task Task
		want string
	}{
		{
			name: "pending without category",
			task: Task{ID: 1, Title: "Buy milk", CreatedAt: "2026-01-02 03:04:05"},
			want: "1,Buy milk,,0,2026-01-02 03:04:05",
		},
		{
			name: "done with category",
			task: Task{ID: 12, Title: "Write report", Category: "work", Done: true, CreatedAt: "ts"},
			want: "12,Write report,work,1,ts",
		},
		{
			name: "delimiter and newline escaped",
			task: Task{ID: 3, Title: "a,b\nc", Category: "x,y", CreatedAt: "t,s"},
			want: "3,a;b c,x;y,0,t;s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeRecord(tt.task)
			if got != tt.want {
				t.Errorf("EncodeRecord() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   Task
		wantOK bool
	}{
		{
			name:   "full record",
			line:   "2,Write report,work,1,2026-01-02 03:04:05",
			want:   Task{ID: 2, Title: "Write report", Category: "work", Done: true, CreatedAt: "2026-01-02 03:04:05"},
			wantOK: true,
		},
		{
			name:   "empty category kept",
			line:   "1,Buy milk,,0,ts",
			want:   Task{ID: 1, Title: "Buy milk", CreatedAt: "ts"},
			wantOK: true,
		},
		{
			name:   "trailing empty created_at",
			line:   "5,Title,cat,0,",
			want:   Task{ID: 5, Title: "Title", Category: "cat"},
			wantOK: true,
		},
		{
			name:   "done only for literal 1",
			line:   "6,Title,,yes,ts",
			want:   Task{ID: 6, Title: "Title", CreatedAt: "ts"},
			wantOK: true,
		},
		{
			name:   "empty done flag is false",
			line:   "7,Title,,,ts",
			want:   Task{ID: 7, Title: "Title", CreatedAt: "ts"},
			wantOK: true,
		},
		{
			name:   "extra fields ignored",
			line:   "8,Title,cat,1,ts,extra,more",
			want:   Task{ID: 8, Title: "Title", Category: "cat", Done: true, CreatedAt: "ts"},
			wantOK: true,
		},
		{
			name:   "id with surrounding spaces",
			line:   " 9 ,Title,,0,ts",
			want:   Task{ID: 9, Title: "Title", CreatedAt: "ts"},
			wantOK: true,
		},
		{
			name:   "two fields skipped",
			line:   "3,Task A",
			wantOK: false,
		},
		{
			name:   "four fields skipped",
			line:   "3,Task A,cat,0",
			wantOK: false,
		},
		{
			name:   "non-numeric id skipped",
			line:   "abc,Title,,0,ts",
			wantOK: false,
		},
		{
			name:   "partly numeric id skipped",
			line:   "12abc,Title,,0,ts",
			wantOK: false,
		},
		{
			name:   "blank line skipped",
			line:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DecodeLine(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("DecodeLine(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("DecodeLine(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	tasks := []Task{
		{ID: 1, Title: "Buy milk", CreatedAt: "2026-01-02 03:04:05"},
		{ID: 2, Title: "Write report", Category: "work", Done: true, CreatedAt: "2026-01-02 03:04:06"},
		{ID: 99, Title: "semi;colons are fine", Category: "home; garden", CreatedAt: "x"},
		{ID: 100, Title: " padded ", Category: " ", CreatedAt: ""},
	}

	for _, want := range tasks {
		got, ok := DecodeLine(EncodeRecord(want))
		if !ok {
			t.Fatalf("DecodeLine(EncodeRecord(%+v)) skipped", want)
		}
		if got != want {
			t.Errorf("round trip = %+v, want %+v", got, want)
		}
	}
}

func TestRoundTrip_LossyCharacters(t *testing.T) {
	original := Task{ID: 4, Title: "a,b\nc", Category: "x\ry", CreatedAt: "ts"}

	got, ok := DecodeLine(EncodeRecord(original))
	if !ok {
		t.Fatal("line with escaped characters should decode")
	}

	// The escaped form comes back, not the original
	want := Task{ID: 4, Title: "a;b c", Category: "x y", CreatedAt: "ts"}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}
