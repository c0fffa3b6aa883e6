package levels

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAllEmbedded(t *testing.T) {
	scenes, err := LoadAll()
	require.NoError(t, err)
	require.Len(t, scenes, 3)

	street1 := scenes["street1"]
	require.NotNil(t, street1)
	assert.Equal(t, "Main Street 1", street1.Name)
	require.Len(t, street1.Doors, 3)
	assert.Equal(t, "Bookstore", street1.Doors[0].Name)
	assert.InDelta(t, 0.188, street1.Doors[0].PX, 1e-9)
	assert.Equal(t, DoorShop, street1.Doors[0].EffectiveKind())
	assert.InDelta(t, DefaultTolerance, street1.Doors[0].Tol(), 1e-9)

	street2 := scenes["street2"]
	require.NotNil(t, street2)
	assert.Equal(t, DoorStudio, street2.Doors[0].EffectiveKind())
	assert.Equal(t, DoorBonus, street2.Doors[1].EffectiveKind())

	for id, sc := range scenes {
		for _, ex := range sc.Exits {
			_, ok := scenes[ex.To]
			assert.Truef(t, ok, "scene %s exit %s points at unknown scene %q", id, ex.Side, ex.To)
		}
	}
}

func TestLoadLevelFromFS(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		wantID  string
		wantErr bool
	}{
		{name: "with_extension", file: "street3.json", wantID: "street3"},
		{name: "without_extension", file: "street2", wantID: "street2"},
		{name: "missing", file: "nowhere", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sc, err := LoadLevelFromFS(tc.file)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, sc.ID)
		})
	}
}

func TestLoadAllFromRejectsBadData(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "door_out_of_range", body: `{"id":"a","doors":[{"px":1.5,"name":"X"}]}`},
		{name: "unknown_kind", body: `{"id":"a","doors":[{"px":0.5,"name":"X","kind":"portal"}]}`},
		{name: "unknown_side", body: `{"id":"a","doors":[],"exits":[{"side":"up","to":"b"}]}`},
		{name: "bad_json", body: `{"id":`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fsys := fstest.MapFS{"a.json": &fstest.MapFile{Data: []byte(tc.body)}}
			_, err := LoadAllFrom(fsys)
			require.Error(t, err)
		})
	}
}

func TestLoadAllFromDefaultsIDAndRejectsDuplicates(t *testing.T) {
	fsys := fstest.MapFS{
		"alley.json": &fstest.MapFile{Data: []byte(`{"name":"Alley","doors":[]}`)},
	}
	scenes, err := LoadAllFrom(fsys)
	require.NoError(t, err)
	require.Contains(t, scenes, "alley")

	fsys["other.json"] = &fstest.MapFile{Data: []byte(`{"id":"alley","doors":[]}`)}
	_, err = LoadAllFrom(fsys)
	require.Error(t, err)
}

func TestCloneIsDeep(t *testing.T) {
	sc, err := LoadLevelFromFS("street1")
	require.NoError(t, err)

	cp := sc.Clone()
	cp.Doors[0].PX = 0.5
	*cp.Exits[0].SpawnPX = 0.5

	assert.InDelta(t, 0.188, sc.Doors[0].PX, 1e-9)
	assert.InDelta(t, 0.92, *sc.Exits[0].SpawnPX, 1e-9)
}

func TestMarshalRoundTripsThroughLoader(t *testing.T) {
	sc, err := LoadLevelFromFS("street2")
	require.NoError(t, err)
	sc.Doors[2].PX = 0.75

	data, err := Marshal(sc)
	require.NoError(t, err)

	back, err := LoadAllFrom(fstest.MapFS{"street2.json": &fstest.MapFile{Data: data}})
	require.NoError(t, err)
	assert.InDelta(t, 0.75, back["street2"].Doors[2].PX, 1e-9)
	assert.Equal(t, DoorBonus, back["street2"].Doors[1].Kind)

	_, err = Marshal(nil)
	require.Error(t, err)
}
