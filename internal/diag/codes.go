package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Детект диалекта (вся-файловое решение)
	DetInfo                Code = 1000
	DetUnrecognizedGrammar Code = 1001

	// Классификация строк
	ClsInfo          Code = 2000
	ClsMalformedLine Code = 2001
	ClsEmptyLabel    Code = 2002
	ClsStrayBrace    Code = 2003
	ClsBadName       Code = 2004

	// Сборка дерева
	TreeInfo               Code = 3000
	TreeDepthInconsistency Code = 3001
	TreeReclassified       Code = 3002

	// Файловая система (резервируем под отчёты; сами ошибки — error values)
	FsInfo         Code = 4000
	FsCreateFailed Code = 4001
	FsKindConflict Code = 4002
)

func (c Code) String() string {
	switch c {
	case DetUnrecognizedGrammar:
		return "DET_UNRECOGNIZED_GRAMMAR"
	case ClsMalformedLine:
		return "CLS_MALFORMED_LINE"
	case ClsEmptyLabel:
		return "CLS_EMPTY_LABEL"
	case ClsStrayBrace:
		return "CLS_STRAY_BRACE"
	case ClsBadName:
		return "CLS_BAD_NAME"
	case TreeDepthInconsistency:
		return "TREE_DEPTH_INCONSISTENCY"
	case TreeReclassified:
		return "TREE_RECLASSIFIED"
	case FsCreateFailed:
		return "FS_CREATE_FAILED"
	case FsKindConflict:
		return "FS_KIND_CONFLICT"
	case DetInfo, ClsInfo, TreeInfo, FsInfo:
		return fmt.Sprintf("INFO_%04d", uint16(c))
	default:
		return fmt.Sprintf("CODE_%04d", uint16(c))
	}
}
