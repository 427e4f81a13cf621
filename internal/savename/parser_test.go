package savename

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  ParsedName
	}{
		{
			name: "bare slot", input: "user1.dat",
			want: ParsedName{Tag: "1"},
		},
		{
			name: "slot with version", input: "user2_1.0.28891.dat",
			want: ParsedName{Tag: "2", Version: "1.0.28891"},
		},
		{
			name: "legacy four-component version", input: "user4_1.2.3.28891.dat",
			want: ParsedName{Tag: "4", Version: "1.2.3.28891"},
		},
		{
			name: "numbered backup", input: "user2.dat.bak123",
			want: ParsedName{Tag: "2", BackupID: "123", Backup: true},
		},
		{
			name: "bare backup marker", input: "user2.dat.bak",
			want: ParsedName{Tag: "2", BackupID: "", Backup: true},
		},
		{
			name: "word tag", input: "userTest.dat",
			want: ParsedName{Tag: "Test"},
		},
		{
			name: "tag with mixed separators", input: "usera-b_c__d.e.dat",
			want: ParsedName{Tag: "a-b_c__d.e"},
		},
		{
			name: "mixed tag with version", input: "usera-b_c__d.e_1.0.28891.dat",
			want: ParsedName{Tag: "a-b_c__d.e", Version: "1.0.28891"},
		},
		{
			name: "internal tag full name", input: "__pin__user4_1.0.28650.dat.bak13",
			want: ParsedName{Tag: "4", Version: "1.0.28650", BackupID: "13", Backup: true, InternalTag: "pin"},
		},
		{
			name: "internal tag with separators", input: "__aa-bb_cc.dd__useraaa_bbb-ccc.ddd_1.2.3.28891.dat.bak123",
			want: ParsedName{Tag: "aaa_bbb-ccc.ddd", Version: "1.2.3.28891", BackupID: "123", Backup: true, InternalTag: "aa-bb_cc.dd"},
		},
		{
			// The extra ".dat" is absorbed into the tag: the first position
			// where the look-ahead succeeds is before the second ".dat".
			name: "tag swallows embedded .dat", input: "user1.dat.dat",
			want: ParsedName{Tag: "1.dat"},
		},
		{
			// "_1" cannot be a version here because no suffix follows it
			// directly, so it stays part of the tag.
			name: "trailing underscore digits in tag plus version", input: "usera_1_2.0.1.dat",
			want: ParsedName{Tag: "a_1", Version: "2.0.1"},
		},
		{
			// An underscore with no digits after it never starts a version.
			name: "tag ending in underscore", input: "user1_.dat",
			want: ParsedName{Tag: "1_"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseBackupDistinction(t *testing.T) {
	// ".bak" with no digits and no ".bak" at all must not collapse into the
	// same record.
	plain, err := Parse("user2.dat")
	require.NoError(t, err)
	bare, err := Parse("user2.dat.bak")
	require.NoError(t, err)

	assert.False(t, plain.Backup)
	assert.True(t, bare.Backup)
	assert.Empty(t, bare.BackupID)
	assert.NotEqual(t, plain, bare)
}

func TestParseFailures(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"missing suffix", "usersomething"},
		{"missing user prefix", "save1.dat"},
		{"suffix only", ".dat"},
		{"empty slot tag", "user.dat"},
		{"unclosed internal tag", "__pinuser1.dat"},
		{"empty internal tag", "____user1.dat"},
		{"junk after backup id", "user1.dat.bak12x"},
		{"junk after extension", "user1.datx"},
		{"backup marker misspelled", "user1.dat.bk1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			require.Error(t, err)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.NotEmpty(t, perr.Expected)
		})
	}
}

func TestParseErrorDetail(t *testing.T) {
	_, err := Parse("usersomething")
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, `version or ".dat" suffix`, perr.Expected)
	assert.Equal(t, "something", perr.Remainder)
	assert.Contains(t, perr.Error(), "something")
}

func TestParseNeverPartiallySucceeds(t *testing.T) {
	// A structural mismatch anywhere aborts the whole parse: the zero record
	// comes back, not a half-filled one.
	got, err := Parse("__pin__user4_1.0.28650.datx")
	require.Error(t, err)
	assert.Equal(t, ParsedName{}, got)
	assert.True(t, errors.As(err, new(*ParseError)))
}

func TestParseVersion(t *testing.T) {
	cases := []struct {
		input       string
		wantVersion string
		wantRest    string
		wantPresent bool
	}{
		{"_1.0.28891", "1.0.28891", "", true},
		{"_1.2.3.28891", "1.2.3.28891", "", true},
		{"_7", "7", "", true},
		{"_1.0.28891.dat", "1.0.28891", ".dat", true},
		{"_1..2", "1", "..2", true},
		{".dat", "", ".dat", false},
		{"_x", "", "_x", false},
		{"", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			version, rest, present := parseVersion(tc.input)
			assert.Equal(t, tc.wantPresent, present)
			assert.Equal(t, tc.wantVersion, version)
			assert.Equal(t, tc.wantRest, rest)
		})
	}
}

func TestParseSuffix(t *testing.T) {
	cases := []struct {
		input      string
		wantID     string
		wantBackup bool
		wantErr    bool
	}{
		{".dat", "", false, false},
		{".dat.bak", "", true, false},
		{".dat.bak123", "123", true, false},
		{".dat.bak12x", "", false, true},
		{".datx", "", false, true},
		{"err", "", false, true},
		{"", "", false, true},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			id, backup, err := parseSuffix(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, id)
			assert.Equal(t, tc.wantBackup, backup)
		})
	}
}

func TestParseInternalTag(t *testing.T) {
	tag, rest, err := parseInternalTag("__sometag__user2.dat")
	require.NoError(t, err)
	assert.Equal(t, "sometag", tag)
	assert.Equal(t, "user2.dat", rest)

	// No opening marker: absent, not an error.
	tag, rest, err = parseInternalTag("user2.dat")
	require.NoError(t, err)
	assert.Empty(t, tag)
	assert.Equal(t, "user2.dat", rest)

	_, _, err = parseInternalTag("__neverclosed")
	require.Error(t, err)
}
