package cff

// fakeAccessor is a minimal, fully in-memory Accessor used across this
// package's tests. Every field defaults to the empty/non-CID case; tests
// set only the fields their scenario needs.
type fakeAccessor struct {
	nameIndex []byte
	topDict   Dict

	isCID            bool
	rosRegistry      int32
	rosOrdering      int32
	rosSupplement    []byte
	hasROS           bool
	numStrings       int
	strings          map[int32][]byte
	globalSubrs      [][]byte
	predefEncoding   bool
	codes            map[GID]int
	supplementalCode map[GID][]int
	predefCharset    bool
	sids             map[GID]int32
	hasFDSelect      bool
	fdCount          int
	glyphToFD        map[GID]int
	fontDicts        map[int]Dict
	privateDicts     map[int]Dict
	localSubrs       map[int][][]byte
	charStrings      map[GID][]byte
	numGlyphs        int
}

func (a *fakeAccessor) NameIndexBytes() []byte { return a.nameIndex }
func (a *fakeAccessor) TopDict() Dict          { return a.topDict }
func (a *fakeAccessor) IsCID() bool            { return a.isCID }

func (a *fakeAccessor) ROS() (int32, int32, []byte, bool) {
	return a.rosRegistry, a.rosOrdering, a.rosSupplement, a.hasROS
}

func (a *fakeAccessor) NumStrings() int          { return a.numStrings }
func (a *fakeAccessor) String(sid int32) []byte  { return a.strings[sid] }
func (a *fakeAccessor) GlobalSubrs() [][]byte    { return a.globalSubrs }
func (a *fakeAccessor) IsPredefEncoding() bool   { return a.predefEncoding }

func (a *fakeAccessor) GlyphToCode(gid GID) (int, bool) {
	code, ok := a.codes[gid]
	return code, ok
}

func (a *fakeAccessor) SupplementalCodes(gid GID) []int { return a.supplementalCode[gid] }
func (a *fakeAccessor) IsPredefCharset() bool           { return a.predefCharset }
func (a *fakeAccessor) GlyphToSID(gid GID) int32        { return a.sids[gid] }
func (a *fakeAccessor) HasFDSelect() bool               { return a.hasFDSelect }
func (a *fakeAccessor) FDCount() int                    { return a.fdCount }
func (a *fakeAccessor) GlyphToFD(gid GID) int            { return a.glyphToFD[gid] }
func (a *fakeAccessor) FontDict(fd int) Dict             { return a.fontDicts[fd] }
func (a *fakeAccessor) PrivateDict(fd int) Dict          { return a.privateDicts[fd] }
func (a *fakeAccessor) LocalSubrs(fd int) [][]byte       { return a.localSubrs[fd] }
func (a *fakeAccessor) NumGlyphs() int                   { return a.numGlyphs }
func (a *fakeAccessor) CharString(gid GID) []byte        { return a.charStrings[gid] }

var _ Accessor = (*fakeAccessor)(nil)
