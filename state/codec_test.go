package state

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortedSample() *Schedule {
	s := sampleNodeSchedule()
	s.Sort()
	return s
}

func TestMarshalXML_Layout(t *testing.T) {
	out, err := MarshalXML(sortedSample())
	require.NoError(t, err)
	text := string(out)

	assert.True(t, strings.HasPrefix(text, `<?xml version="1.0" ?>`+"\n<TSCHSchedule>\n"))
	assert.Contains(t, text, "\n   <Slotframe macSlotframeSize=\"101\">\n")
	assert.Contains(t, text, "\n      <Link slotOffset=\"1\" channelOffset=\"15\">\n")
	assert.Contains(t, text, "\n         <Option tx=\"true\" rx=\"false\" shared=\"false\" auto=\"false\"/>\n")
	assert.Contains(t, text, `<Option tx="false" rx="true" shared="false" auto="true"/>`)
	assert.Contains(t, text, `<Virtual id="0"/>`)
	assert.Contains(t, text, `<Type normal="true" advertising="false" advertisingOnly="false"/>`)
	assert.Contains(t, text, `<Neighbor address="FF:FF:FF:FF:FF:FF"/>`)
	assert.Contains(t, text, `<Neighbor address="0A:AA:00:00:00:01"/>`)
	assert.NotContains(t, text, "handle")
	for _, leaf := range []string{"</Option>", "</Virtual>", "</Type>", "</Neighbor>"} {
		assert.NotContains(t, text, leaf)
	}

	// links keep schedule order
	assert.Less(t, strings.Index(text, `slotOffset="0"`), strings.Index(text, `slotOffset="1"`))
	assert.Less(t, strings.Index(text, `slotOffset="1"`), strings.Index(text, `slotOffset="37"`))
}

func TestScheduleCodec_RoundTrip(t *testing.T) {
	for _, format := range []Format{FormatXML, FormatYAML} {
		s := sortedSample()
		data, err := EncodeSchedule(s, format)
		require.NoError(t, err)
		back, err := DecodeSchedule(data, format, DefaultGateway, 0)
		require.NoError(t, err)
		if diff := cmp.Diff(s, back); diff != "" {
			t.Errorf("%s round trip mismatch (-want +got):\n%s", format, diff)
		}
	}
}

func TestDecodeSchedule_Invalid(t *testing.T) {
	_, err := DecodeSchedule([]byte("<TSCHSchedule><Slotframe"), FormatXML, DefaultGateway, 0)
	assert.ErrorIs(t, err, ErrFormat)
	_, err = DecodeSchedule([]byte(`<TSCHSchedule><Slotframe macSlotframeSize="0"></Slotframe></TSCHSchedule>`), FormatXML, DefaultGateway, 0)
	assert.ErrorIs(t, err, ErrFormat)
	_, err = DecodeSchedule([]byte(`<TSCHSchedule><Slotframe macSlotframeSize="5"><Link><Neighbor address="zz"></Neighbor></Link></Slotframe></TSCHSchedule>`), FormatXML, DefaultGateway, 0)
	assert.Error(t, err)
}

func TestWriteSchedule_CreatesDirs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	s := sortedSample()
	path := filepath.Join(dir, FileName(s, FormatXML))
	require.NoError(t, WriteSchedule(s, path, FormatXML))
	assert.FileExists(t, filepath.Join(dir, "host_0.xml"))

	back, err := ReadSchedule(path, DefaultGateway)
	require.NoError(t, err)
	assert.Equal(t, s, back)
}

func TestWriteSchedule_Unwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	err := WriteSchedule(sortedSample(), filepath.Join(blocker, "host_0.xml"), FormatXML)
	assert.ErrorIs(t, err, ErrIO)
}

func TestParseFileName(t *testing.T) {
	idx, f, err := ParseFileName("out/sink.xml")
	assert.NoError(t, err)
	assert.Equal(t, GatewayIndex, idx)
	assert.Equal(t, FormatXML, f)

	idx, f, err = ParseFileName("host_42.yaml")
	assert.NoError(t, err)
	assert.Equal(t, 42, idx)
	assert.Equal(t, FormatYAML, f)

	for _, bad := range []string{"host_x.xml", "host_-1.xml", "node_1.xml", "sink.txt", "sink"} {
		_, _, err := ParseFileName(bad)
		assert.ErrorIs(t, err, ErrFormat, bad)
	}
}

func TestReadSchedule_Missing(t *testing.T) {
	_, err := ReadSchedule(filepath.Join(t.TempDir(), "sink.xml"), DefaultGateway)
	assert.ErrorIs(t, err, ErrIO)
}
