package models

import (
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/guardian/encodingstatus/common/parser"
)

func TestNewMedia(t *testing.T) {
	existing := NewSource("http://example.com/existing.mov")
	format := NewFormat("mp4", nil)

	m, err := NewMedia([]interface{}{existing, "http://example.com/new.mov", 1234}, []*Format{format}, map[string]interface{}{"notify": "http://cb"})
	if err != nil {
		t.Fatalf("NewMedia returned an error: %s", err)
	}
	if len(m.GetSources()) != 3 {
		t.Fatalf("expected 3 sources, got %d", len(m.GetSources()))
	}
	if m.GetSources()[0] != existing {
		t.Error("a *Source should be added as-is")
	}
	if m.GetSources()[1].Location != "http://example.com/new.mov" {
		t.Errorf("string should become a source location, got %s", m.GetSources()[1].Location)
	}
	if m.GetSources()[2].Location != "1234" {
		t.Errorf("scalar should become a source location, got %s", m.GetSources()[2].Location)
	}
	if !m.HasFormats() || m.GetFormats()[0] != format {
		t.Error("format was not added")
	}
	if m.GetOptions()["notify"] != "http://cb" {
		t.Errorf("options were not set, got %s", spew.Sdump(m.GetOptions()))
	}

	empty, err := NewMedia(nil, nil, nil)
	if err != nil {
		t.Fatalf("NewMedia returned an error for no arguments: %s", err)
	}
	if empty.HasSources() || empty.HasFormats() || len(empty.GetOptions()) != 0 {
		t.Errorf("empty media should have nothing in it, got %s", spew.Sdump(empty))
	}
}

func TestMedia_AddSource(t *testing.T) {
	m, _ := NewMedia(nil, nil, nil)
	m.AddSource("a.mov")
	m.AddSource("a.mov")
	if len(m.GetSources()) != 2 {
		t.Error("sources should not be de-duplicated")
	}

	if err := m.AddSource(map[string]interface{}{"x": 1}); err == nil {
		t.Error("a map should not be accepted as a source")
	}
	var nilSource *Source
	if err := m.AddSource(nilSource); err == nil {
		t.Error("a nil source should not be accepted")
	}
	if len(m.GetSources()) != 2 {
		t.Error("rejected sources should not be added")
	}

	m.ClearSources()
	if m.HasSources() {
		t.Error("ClearSources did not clear")
	}
}

func TestMedia_SetOptions(t *testing.T) {
	m, _ := NewMedia(nil, nil, nil)

	m.SetOptions(map[string]interface{}{"a": 1})
	m.SetOptions(map[string]interface{}{"b": 2})
	if !reflect.DeepEqual(m.GetOptions(), map[string]interface{}{"a": 1, "b": 2}) {
		t.Errorf("options should merge, got %s", spew.Sdump(m.GetOptions()))
	}

	m.SetOptions(map[string]interface{}{"a": 3})
	if !reflect.DeepEqual(m.GetOptions(), map[string]interface{}{"a": 3, "b": 2}) {
		t.Errorf("new value should override, got %s", spew.Sdump(m.GetOptions()))
	}

	m.SetOptions(map[string]interface{}{})
	m.SetOptions(nil)
	if !reflect.DeepEqual(m.GetOptions(), map[string]interface{}{"a": 3, "b": 2}) {
		t.Errorf("empty options should change nothing, got %s", spew.Sdump(m.GetOptions()))
	}

	m.ClearOptions()
	if len(m.GetOptions()) != 0 {
		t.Error("ClearOptions did not clear")
	}
}

func TestMedia_SetError(t *testing.T) {
	m, _ := NewMedia(nil, nil, nil)
	m.SetStatus(MEDIA_PROCESSING)
	if m.IsError() || m.HasError() {
		t.Error("new media should not be in error")
	}

	m.SetError("source file could not be downloaded")
	if m.GetStatus() != MEDIA_ERROR {
		t.Errorf("SetError should move status to Error, got %s", m.GetStatus())
	}
	if !m.IsError() || !m.HasError() {
		t.Error("IsError and HasError should be true after SetError")
	}
	if m.GetError() != "source file could not be downloaded" {
		t.Errorf("error message was not recorded, got '%s'", m.GetError())
	}
}

func TestMedia_HasErrorFromFormat(t *testing.T) {
	m, _ := NewMedia(nil, nil, nil)
	m.SetStatus(MEDIA_PROCESSING)

	good := NewFormat("mp4", nil)
	good.Properties.Status = "Processing"
	bad := NewFormat("webm", nil)
	bad.Properties.Status = FORMAT_STATUS_ERROR

	m.AddFormat(good)
	if m.HasError() {
		t.Error("HasError should be false when no format is in error")
	}
	m.AddFormat(bad)
	if !m.HasError() {
		t.Error("HasError should be true when a format is in error")
	}
	if m.IsError() {
		t.Error("IsError only looks at the job status")
	}

	m.ClearFormats()
	if m.HasError() || m.HasFormats() {
		t.Error("ClearFormats did not clear")
	}
}

func TestMedia_StatusPredicates(t *testing.T) {
	m, _ := NewMedia(nil, nil, nil)

	m.SetStatus(MEDIA_READY)
	if !m.IsReady() || m.IsDone() || m.IsError() {
		t.Error("predicates wrong for Ready to process")
	}
	m.SetStatus(MEDIA_FINISHED)
	if !m.IsDone() || m.IsReady() {
		t.Error("predicates wrong for Finished")
	}

	//any value is accepted
	m.SetStatus("Something the service just invented")
	if m.GetStatus() != "Something the service just invented" {
		t.Errorf("SetStatus should accept any value, got %s", m.GetStatus())
	}
	if m.GetStatus().IsKnown() {
		t.Error("invented status should not be known")
	}
	if !MEDIA_STOPPED.IsKnown() {
		t.Error("Stopped Perform should be known")
	}
}

func TestMedia_IsOnHold(t *testing.T) {
	m, _ := NewMedia(nil, nil, nil)
	m.SetOnHold(true)

	for _, status := range AvailableStatuses {
		m.SetStatus(status)
		expected := status == MEDIA_READY
		if m.IsOnHold() != expected {
			t.Errorf("IsOnHold with the flag set and status %s gave %t, expected %t", status, m.IsOnHold(), expected)
		}
	}

	m.SetOnHold(false)
	m.SetStatus(MEDIA_READY)
	if m.IsOnHold() {
		t.Error("IsOnHold should be false without the flag")
	}
}

func TestMedia_IsEncoding(t *testing.T) {
	expected := map[MediaStatus]bool{
		MEDIA_NEW:         false,
		MEDIA_DOWNLOADING: true,
		MEDIA_DOWNLOADED:  true,
		MEDIA_READY:       true,
		MEDIA_WAITING:     true,
		MEDIA_PROCESSING:  true,
		MEDIA_SAVING:      true,
		MEDIA_FINISHED:    false,
		MEDIA_ERROR:       false,
		MEDIA_STOPPED:     false,
	}

	m, _ := NewMedia(nil, nil, nil)
	for status, expectEncoding := range expected {
		m.SetStatus(status)
		if m.IsEncoding() != expectEncoding {
			t.Errorf("IsEncoding for %s gave %t, expected %t", status, m.IsEncoding(), expectEncoding)
		}
	}

	m.SetStatus(MEDIA_READY)
	m.SetOnHold(true)
	if m.IsEncoding() {
		t.Error("a job on hold is not encoding")
	}
	m.SetStatus(MEDIA_PROCESSING)
	if !m.IsEncoding() {
		t.Error("hold flag should have no effect outside Ready to process")
	}
}

func TestMedia_SourceFlags(t *testing.T) {
	m, _ := NewMedia(nil, nil, nil)
	if m.IsSourceExtended() {
		t.Error("no sources means not extended")
	}
	if m.HasMultipleSources() {
		t.Error("no sources is not multiple")
	}

	extended := NewSource("a.mov")
	extended.Extended = true
	m.AddSource(extended)
	m.AddSource("b.mov")
	if !m.IsSourceExtended() {
		t.Error("only the first source should be looked at, and it is extended")
	}
	if !m.HasMultipleSources() {
		t.Error("two sources is multiple")
	}

	other, _ := NewMedia([]interface{}{"plain.mov", extended}, nil, nil)
	if other.IsSourceExtended() {
		t.Error("first source is not extended so the media is not")
	}
}

func TestMedia_Update(t *testing.T) {
	m, _ := NewMedia(nil, nil, map[string]interface{}{"keep": "me"})

	m.Update(map[string]interface{}{"id": "42", "status": "Processing", "progress": "50"}, map[string]interface{}{"new": "opt"}, true)
	if m.GetId() != "42" {
		t.Errorf("id should be set from data, got %s", m.GetId())
	}
	if m.GetStatus() != MEDIA_PROCESSING {
		t.Errorf("status should be set from data, got %s", m.GetStatus())
	}
	if m.Get("progress") != "50" {
		t.Errorf("other data should be stored, got %s", spew.Sdump(m.GetData()))
	}
	if !reflect.DeepEqual(m.GetOptions(), map[string]interface{}{"keep": "me", "new": "opt"}) {
		t.Errorf("options should be merged, got %s", spew.Sdump(m.GetOptions()))
	}
	if !m.IsExtended() {
		t.Error("extended flag should be set")
	}

	m.Update(map[string]interface{}{"status": "Saving"}, nil, false)
	if m.IsExtended() {
		t.Error("extended flag should be replaced, not merged")
	}
	if m.Get("progress") != "50" || m.GetId() != "42" {
		t.Error("data not given in an update should be left alone")
	}
}

func TestMedia_ApplyStatus(t *testing.T) {
	records, err := parser.ParseMediaStatus(map[string]interface{}{
		"id":         "77",
		"userid":     "5",
		"status":     "Processing",
		"sourcefile": []interface{}{"a.mov", "b.mov"},
		"time_left":  "30",
		"format": map[string]interface{}{
			"id":                 "1",
			"output":             "mp4",
			"status":             "Error",
			"created":            "2020-04-05 06:07:08",
			"destination":        "s3://out",
			"destination_status": "Error",
			"bitrate":            "1000k",
		},
	}, false)
	if err != nil {
		t.Fatalf("could not parse test data: %s", err)
	}

	m, _ := NewMedia(nil, nil, nil)
	applyErr := m.ApplyStatus(records[0], false)
	if applyErr != nil {
		t.Fatalf("ApplyStatus returned an error: %s", applyErr)
	}

	if m.GetId() != "77" || m.GetStatus() != MEDIA_PROCESSING {
		t.Errorf("id/status not applied: %s %s", m.GetId(), m.GetStatus())
	}
	if m.Get("userId") != "5" || m.Get("time_left") != "30" {
		t.Errorf("data not applied: %s", spew.Sdump(m.GetData()))
	}
	if len(m.GetSources()) != 2 {
		t.Errorf("sources should be seeded from the record, got %d", len(m.GetSources()))
	}
	if len(m.GetFormats()) != 1 {
		t.Fatalf("expected one format, got %d", len(m.GetFormats()))
	}
	if !m.HasError() || m.IsError() {
		t.Error("format error should show in HasError but not IsError")
	}
	if m.GetFormats()[0].Options["bitrate"] != "1000k" {
		t.Errorf("format options not carried over: %s", spew.Sdump(m.GetFormats()[0].Options))
	}

	//applying again replaces formats and leaves sources alone
	records[0].Formats = []parser.FormatRecord{}
	records[0].Sources = []string{"c.mov"}
	m.ApplyStatus(records[0], true)
	if m.HasFormats() {
		t.Error("formats should be rebuilt from the record")
	}
	if len(m.GetSources()) != 2 || m.GetSources()[0].Location != "a.mov" {
		t.Errorf("existing sources should be kept, got %s", spew.Sdump(m.GetSources()))
	}
	if !m.IsExtended() {
		t.Error("extended flag should follow the latest update")
	}
}

/**
a format timestamp in an unknown layout must not stop the status update from landing
*/
func TestMedia_ApplyStatusUnknownTimestamp(t *testing.T) {
	records, err := parser.ParseMediaStatus(map[string]interface{}{
		"id":     "1",
		"status": "Processing",
		"format": map[string]interface{}{
			"id":      "9",
			"output":  "mp4",
			"status":  "Processing",
			"created": "2020-01-02 03:04:05 +0000",
		},
	}, false)
	if err != nil {
		t.Fatalf("could not parse test data: %s", err)
	}

	m, _ := NewMedia(nil, nil, nil)
	m.SetStatus(MEDIA_NEW)
	if applyErr := m.ApplyStatus(records[0], false); applyErr != nil {
		t.Fatalf("ApplyStatus returned an error: %s", applyErr)
	}
	if m.GetStatus() != MEDIA_PROCESSING {
		t.Errorf("status should be updated, got %s", m.GetStatus())
	}
	if len(m.GetFormats()) != 1 {
		t.Fatalf("expected one format, got %s", spew.Sdump(m.GetFormats()))
	}
	format := m.GetFormats()[0]
	if format.Properties.UnparsedTimes["created"] != "2020-01-02 03:04:05 +0000" {
		t.Errorf("raw timestamp should be kept, got %s", spew.Sdump(format.Properties))
	}
	if format.Properties.Status != "Processing" {
		t.Errorf("format status should still decode, got '%s'", format.Properties.Status)
	}
}

func TestMedia_ApplyStub(t *testing.T) {
	stubs, _ := parser.ParseMediaList(map[string]interface{}{
		"media": map[string]interface{}{"mediaid": "3", "mediafile": "x.mov", "mediastatus": "New", "createdate": "today"},
	})
	m, _ := NewMedia(nil, nil, nil)
	if err := m.ApplyStub(stubs[0]); err != nil {
		t.Fatalf("ApplyStub returned an error: %s", err)
	}
	if m.GetId() != "3" || !m.IsNew() {
		t.Errorf("stub not applied: %s %s", m.GetId(), m.GetStatus())
	}
	if len(m.GetSources()) != 1 || m.GetSources()[0].Location != "x.mov" {
		t.Errorf("source not seeded: %s", spew.Sdump(m.GetSources()))
	}
	if m.Get("createdate") != "today" {
		t.Errorf("properties not stored: %s", spew.Sdump(m.GetData()))
	}
}

func TestMedia_ApplyMediaInfo(t *testing.T) {
	info, _ := parser.ParseMediaInfo(map[string]interface{}{
		"source": []interface{}{
			map[string]interface{}{"video_codec": "h264", "audio_codec": "aac", "size": "100"},
			map[string]interface{}{"audio_codec": "mp3"},
		},
	})

	m, _ := NewMedia([]interface{}{"first.mov"}, nil, nil)
	if err := m.ApplyMediaInfo(info); err != nil {
		t.Fatalf("ApplyMediaInfo returned an error: %s", err)
	}
	sources := m.GetSources()
	if len(sources) != 2 {
		t.Fatalf("expected 2 sources, got %d", len(sources))
	}
	if sources[0].Location != "first.mov" || !sources[0].IsExtended() {
		t.Errorf("first source should keep its location and be extended: %s", spew.Sdump(sources[0]))
	}
	if !sources[0].HasVideoTrack() || !sources[0].HasAudioTrack() || sources[0].HasTextTrack() {
		t.Errorf("first source tracks wrong: %s", spew.Sdump(sources[0].Streams))
	}
	if sources[0].Properties["size"] != "100" {
		t.Errorf("first source properties wrong: %s", spew.Sdump(sources[0].Properties))
	}
	if !sources[1].IsExtended() || sources[1].Streams.Audio[1]["codec"] != "mp3" {
		t.Errorf("second source wrong: %s", spew.Sdump(sources[1]))
	}
	if !m.IsSourceExtended() {
		t.Error("media sources should now be extended")
	}

	if err := m.ApplyMediaInfo(nil); err != nil {
		t.Errorf("nil info should be ignored, got %s", err)
	}
}
