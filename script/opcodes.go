package script

import "strings"

// Bitcoin SV script opcodes, based on the bitcoin-sv script.h definitions.
const (
	// push value
	Op0         = 0x00
	OpFALSE     = 0x00
	OpPUSHDATA1 = 0x4c
	OpPUSHDATA2 = 0x4d
	OpPUSHDATA4 = 0x4e
	Op1NEGATE   = 0x4f
	OpRESERVED  = 0x50
	Op1         = 0x51
	OpTRUE      = 0x51
	Op2         = 0x52
	Op3         = 0x53
	Op4         = 0x54
	Op5         = 0x55
	Op6         = 0x56
	Op7         = 0x57
	Op8         = 0x58
	Op9         = 0x59
	Op10        = 0x5a
	Op11        = 0x5b
	Op12        = 0x5c
	Op13        = 0x5d
	Op14        = 0x5e
	Op15        = 0x5f
	Op16        = 0x60

	// control
	OpNOP      = 0x61
	OpVER      = 0x62
	OpIF       = 0x63
	OpNOTIF    = 0x64
	OpVERIF    = 0x65
	OpVERNOTIF = 0x66
	OpELSE     = 0x67
	OpENDIF    = 0x68
	OpVERIFY   = 0x69
	OpRETURN   = 0x6a

	// stack ops
	OpTOALTSTACK   = 0x6b
	OpFROMALTSTACK = 0x6c
	Op2DROP        = 0x6d
	Op2DUP         = 0x6e
	Op3DUP         = 0x6f
	Op2OVER        = 0x70
	Op2ROT         = 0x71
	Op2SWAP        = 0x72
	OpIFDUP        = 0x73
	OpDEPTH        = 0x74
	OpDROP         = 0x75
	OpDUP          = 0x76
	OpNIP          = 0x77
	OpOVER         = 0x78
	OpPICK         = 0x79
	OpROLL         = 0x7a
	OpROT          = 0x7b
	OpSWAP         = 0x7c
	OpTUCK         = 0x7d

	// splice ops
	OpCAT     = 0x7e
	OpSPLIT   = 0x7f
	OpNUM2BIN = 0x80
	OpBIN2NUM = 0x81
	OpSIZE    = 0x82

	// bit logic
	OpINVERT      = 0x83
	OpAND         = 0x84
	OpOR          = 0x85
	OpXOR         = 0x86
	OpEQUAL       = 0x87
	OpEQUALVERIFY = 0x88
	OpRESERVED1   = 0x89
	OpRESERVED2   = 0x8a

	// numeric
	Op1ADD               = 0x8b
	Op1SUB               = 0x8c
	Op2MUL               = 0x8d
	Op2DIV               = 0x8e
	OpNEGATE             = 0x8f
	OpABS                = 0x90
	OpNOT                = 0x91
	Op0NOTEQUAL          = 0x92
	OpADD                = 0x93
	OpSUB                = 0x94
	OpMUL                = 0x95
	OpDIV                = 0x96
	OpMOD                = 0x97
	OpLSHIFT             = 0x98
	OpRSHIFT             = 0x99
	OpBOOLAND            = 0x9a
	OpBOOLOR             = 0x9b
	OpNUMEQUAL           = 0x9c
	OpNUMEQUALVERIFY     = 0x9d
	OpNUMNOTEQUAL        = 0x9e
	OpLESSTHAN           = 0x9f
	OpGREATERTHAN        = 0xa0
	OpLESSTHANOREQUAL    = 0xa1
	OpGREATERTHANOREQUAL = 0xa2
	OpMIN                = 0xa3
	OpMAX                = 0xa4
	OpWITHIN             = 0xa5

	// crypto
	OpRIPEMD160           = 0xa6
	OpSHA1                = 0xa7
	OpSHA256              = 0xa8
	OpHASH160             = 0xa9
	OpHASH256             = 0xaa
	OpCODESEPARATOR       = 0xab
	OpCHECKSIG            = 0xac
	OpCHECKSIGVERIFY      = 0xad
	OpCHECKMULTISIG       = 0xae
	OpCHECKMULTISIGVERIFY = 0xaf

	// expansion
	OpNOP1                = 0xb0
	OpNOP2                = 0xb1
	OpCHECKLOCKTIMEVERIFY = 0xb1
	OpNOP3                = 0xb2
	OpCHECKSEQUENCEVERIFY = 0xb2
	OpNOP4                = 0xb3
	OpNOP5                = 0xb4
	OpNOP6                = 0xb5
	OpNOP7                = 0xb6
	OpNOP8                = 0xb7
	OpNOP9                = 0xb8
	OpNOP10               = 0xb9

	// template matching params
	OpPUBKEYHASH    = 0xfd
	OpPUBKEY        = 0xfe
	OpINVALIDOPCODE = 0xff
)

// MaxDirectPush is the largest payload that can be pushed with a bare length byte.
const MaxDirectPush = 0x4b

// opcodeNames holds the canonical mnemonic of every named opcode; unnamed bytes are empty.
var opcodeNames = [256]string{
	Op0:         "OP_0",
	OpPUSHDATA1: "OP_PUSHDATA1",
	OpPUSHDATA2: "OP_PUSHDATA2",
	OpPUSHDATA4: "OP_PUSHDATA4",
	Op1NEGATE:   "OP_1NEGATE",
	OpRESERVED:  "OP_RESERVED",
	Op1:         "OP_1",
	Op2:         "OP_2",
	Op3:         "OP_3",
	Op4:         "OP_4",
	Op5:         "OP_5",
	Op6:         "OP_6",
	Op7:         "OP_7",
	Op8:         "OP_8",
	Op9:         "OP_9",
	Op10:        "OP_10",
	Op11:        "OP_11",
	Op12:        "OP_12",
	Op13:        "OP_13",
	Op14:        "OP_14",
	Op15:        "OP_15",
	Op16:        "OP_16",

	OpNOP:      "OP_NOP",
	OpVER:      "OP_VER",
	OpIF:       "OP_IF",
	OpNOTIF:    "OP_NOTIF",
	OpVERIF:    "OP_VERIF",
	OpVERNOTIF: "OP_VERNOTIF",
	OpELSE:     "OP_ELSE",
	OpENDIF:    "OP_ENDIF",
	OpVERIFY:   "OP_VERIFY",
	OpRETURN:   "OP_RETURN",

	OpTOALTSTACK:   "OP_TOALTSTACK",
	OpFROMALTSTACK: "OP_FROMALTSTACK",
	Op2DROP:        "OP_2DROP",
	Op2DUP:         "OP_2DUP",
	Op3DUP:         "OP_3DUP",
	Op2OVER:        "OP_2OVER",
	Op2ROT:         "OP_2ROT",
	Op2SWAP:        "OP_2SWAP",
	OpIFDUP:        "OP_IFDUP",
	OpDEPTH:        "OP_DEPTH",
	OpDROP:         "OP_DROP",
	OpDUP:          "OP_DUP",
	OpNIP:          "OP_NIP",
	OpOVER:         "OP_OVER",
	OpPICK:         "OP_PICK",
	OpROLL:         "OP_ROLL",
	OpROT:          "OP_ROT",
	OpSWAP:         "OP_SWAP",
	OpTUCK:         "OP_TUCK",

	OpCAT:     "OP_CAT",
	OpSPLIT:   "OP_SPLIT",
	OpNUM2BIN: "OP_NUM2BIN",
	OpBIN2NUM: "OP_BIN2NUM",
	OpSIZE:    "OP_SIZE",

	OpINVERT:      "OP_INVERT",
	OpAND:         "OP_AND",
	OpOR:          "OP_OR",
	OpXOR:         "OP_XOR",
	OpEQUAL:       "OP_EQUAL",
	OpEQUALVERIFY: "OP_EQUALVERIFY",
	OpRESERVED1:   "OP_RESERVED1",
	OpRESERVED2:   "OP_RESERVED2",

	Op1ADD:               "OP_1ADD",
	Op1SUB:               "OP_1SUB",
	Op2MUL:               "OP_2MUL",
	Op2DIV:               "OP_2DIV",
	OpNEGATE:             "OP_NEGATE",
	OpABS:                "OP_ABS",
	OpNOT:                "OP_NOT",
	Op0NOTEQUAL:          "OP_0NOTEQUAL",
	OpADD:                "OP_ADD",
	OpSUB:                "OP_SUB",
	OpMUL:                "OP_MUL",
	OpDIV:                "OP_DIV",
	OpMOD:                "OP_MOD",
	OpLSHIFT:             "OP_LSHIFT",
	OpRSHIFT:             "OP_RSHIFT",
	OpBOOLAND:            "OP_BOOLAND",
	OpBOOLOR:             "OP_BOOLOR",
	OpNUMEQUAL:           "OP_NUMEQUAL",
	OpNUMEQUALVERIFY:     "OP_NUMEQUALVERIFY",
	OpNUMNOTEQUAL:        "OP_NUMNOTEQUAL",
	OpLESSTHAN:           "OP_LESSTHAN",
	OpGREATERTHAN:        "OP_GREATERTHAN",
	OpLESSTHANOREQUAL:    "OP_LESSTHANOREQUAL",
	OpGREATERTHANOREQUAL: "OP_GREATERTHANOREQUAL",
	OpMIN:                "OP_MIN",
	OpMAX:                "OP_MAX",
	OpWITHIN:             "OP_WITHIN",

	OpRIPEMD160:           "OP_RIPEMD160",
	OpSHA1:                "OP_SHA1",
	OpSHA256:              "OP_SHA256",
	OpHASH160:             "OP_HASH160",
	OpHASH256:             "OP_HASH256",
	OpCODESEPARATOR:       "OP_CODESEPARATOR",
	OpCHECKSIG:            "OP_CHECKSIG",
	OpCHECKSIGVERIFY:      "OP_CHECKSIGVERIFY",
	OpCHECKMULTISIG:       "OP_CHECKMULTISIG",
	OpCHECKMULTISIGVERIFY: "OP_CHECKMULTISIGVERIFY",

	OpNOP1:  "OP_NOP1",
	OpNOP2:  "OP_NOP2",
	OpNOP3:  "OP_NOP3",
	OpNOP4:  "OP_NOP4",
	OpNOP5:  "OP_NOP5",
	OpNOP6:  "OP_NOP6",
	OpNOP7:  "OP_NOP7",
	OpNOP8:  "OP_NOP8",
	OpNOP9:  "OP_NOP9",
	OpNOP10: "OP_NOP10",

	OpPUBKEYHASH:    "OP_PUBKEYHASH",
	OpPUBKEY:        "OP_PUBKEY",
	OpINVALIDOPCODE: "OP_INVALIDOPCODE",
}

// opcodeAliases are accepted when parsing but never rendered.
var opcodeAliases = map[string]byte{
	"OP_FALSE":               OpFALSE,
	"OP_TRUE":                OpTRUE,
	"OP_CHECKLOCKTIMEVERIFY": OpCHECKLOCKTIMEVERIFY,
	"OP_CHECKSEQUENCEVERIFY": OpCHECKSEQUENCEVERIFY,
}

var opcodeByName = func() map[string]byte {
	m := make(map[string]byte, len(opcodeAliases)+200)

	for b, name := range opcodeNames {
		if name != "" {
			m[name] = byte(b)
		}
	}

	for name, b := range opcodeAliases {
		m[name] = b
	}

	return m
}()

// OpcodeName returns the canonical mnemonic for b.
// Direct push lengths 0x01-0x4b and undefined opcodes have no mnemonic.
func OpcodeName(b byte) (string, bool) {
	name := opcodeNames[b]
	return name, name != ""
}

// OpcodeByName looks up an opcode by mnemonic, case-insensitively. The OP_ prefix is required.
func OpcodeByName(name string) (byte, bool) {
	b, ok := opcodeByName[strings.ToUpper(strings.TrimSpace(name))]
	return b, ok
}

// IsPushOpcode reports whether b introduces a push-data payload.
func IsPushOpcode(b byte) bool {
	return b >= 0x01 && b <= OpPUSHDATA4
}

// smallIntOpcode maps the literals 0..16 and -1 to their dedicated opcodes.
func smallIntOpcode(n int) (byte, bool) {
	switch {
	case n == -1:
		return Op1NEGATE, true
	case n == 0:
		return Op0, true
	case n >= 1 && n <= 16:
		return byte(Op1 - 1 + n), true
	}

	return 0, false
}
