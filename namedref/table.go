package namedref

// table is the full WHATWG named-character-reference index (spec.md §6 item 4):
// every (name, code-point-1, code-point-2-or-null) triple from the HTML
// Standard's named character references list, both the semicolon-terminated
// and legacy non-terminated spellings. Generated from the same normative list
// Python's standard library ships as html.entities.html5 (itself sourced from
// the WHATWG entities.json); this module consumes it only as name->codepoint
// data, not as a dependency.
var table = []entry{
	{name: "AElig", cp1: '\U000000c6'},
	{name: "AElig;", cp1: '\U000000c6'},
	{name: "AMP", cp1: '&'},
	{name: "AMP;", cp1: '&'},
	{name: "Aacute", cp1: '\U000000c1'},
	{name: "Aacute;", cp1: '\U000000c1'},
	{name: "Abreve;", cp1: '\U00000102'},
	{name: "Acirc", cp1: '\U000000c2'},
	{name: "Acirc;", cp1: '\U000000c2'},
	{name: "Acy;", cp1: '\U00000410'},
	{name: "Afr;", cp1: '\U0001d504'},
	{name: "Agrave", cp1: '\U000000c0'},
	{name: "Agrave;", cp1: '\U000000c0'},
	{name: "Alpha;", cp1: '\U00000391'},
	{name: "Amacr;", cp1: '\U00000100'},
	{name: "And;", cp1: '\U00002a53'},
	{name: "Aogon;", cp1: '\U00000104'},
	{name: "Aopf;", cp1: '\U0001d538'},
	{name: "ApplyFunction;", cp1: '\U00002061'},
	{name: "Aring", cp1: '\U000000c5'},
	{name: "Aring;", cp1: '\U000000c5'},
	{name: "Ascr;", cp1: '\U0001d49c'},
	{name: "Assign;", cp1: '\U00002254'},
	{name: "Atilde", cp1: '\U000000c3'},
	{name: "Atilde;", cp1: '\U000000c3'},
	{name: "Auml", cp1: '\U000000c4'},
	{name: "Auml;", cp1: '\U000000c4'},
	{name: "Backslash;", cp1: '\U00002216'},
	{name: "Barv;", cp1: '\U00002ae7'},
	{name: "Barwed;", cp1: '\U00002306'},
	{name: "Bcy;", cp1: '\U00000411'},
	{name: "Because;", cp1: '\U00002235'},
	{name: "Bernoullis;", cp1: '\U0000212c'},
	{name: "Beta;", cp1: '\U00000392'},
	{name: "Bfr;", cp1: '\U0001d505'},
	{name: "Bopf;", cp1: '\U0001d539'},
	{name: "Breve;", cp1: '\U000002d8'},
	{name: "Bscr;", cp1: '\U0000212c'},
	{name: "Bumpeq;", cp1: '\U0000224e'},
	{name: "CHcy;", cp1: '\U00000427'},
	{name: "COPY", cp1: '\U000000a9'},
	{name: "COPY;", cp1: '\U000000a9'},
	{name: "Cacute;", cp1: '\U00000106'},
	{name: "Cap;", cp1: '\U000022d2'},
	{name: "CapitalDifferentialD;", cp1: '\U00002145'},
	{name: "Cayleys;", cp1: '\U0000212d'},
	{name: "Ccaron;", cp1: '\U0000010c'},
	{name: "Ccedil", cp1: '\U000000c7'},
	{name: "Ccedil;", cp1: '\U000000c7'},
	{name: "Ccirc;", cp1: '\U00000108'},
	{name: "Cconint;", cp1: '\U00002230'},
	{name: "Cdot;", cp1: '\U0000010a'},
	{name: "Cedilla;", cp1: '\U000000b8'},
	{name: "CenterDot;", cp1: '\U000000b7'},
	{name: "Cfr;", cp1: '\U0000212d'},
	{name: "Chi;", cp1: '\U000003a7'},
	{name: "CircleDot;", cp1: '\U00002299'},
	{name: "CircleMinus;", cp1: '\U00002296'},
	{name: "CirclePlus;", cp1: '\U00002295'},
	{name: "CircleTimes;", cp1: '\U00002297'},
	{name: "ClockwiseContourIntegral;", cp1: '\U00002232'},
	{name: "CloseCurlyDoubleQuote;", cp1: '\U0000201d'},
	{name: "CloseCurlyQuote;", cp1: '\U00002019'},
	{name: "Colon;", cp1: '\U00002237'},
	{name: "Colone;", cp1: '\U00002a74'},
	{name: "Congruent;", cp1: '\U00002261'},
	{name: "Conint;", cp1: '\U0000222f'},
	{name: "ContourIntegral;", cp1: '\U0000222e'},
	{name: "Copf;", cp1: '\U00002102'},
	{name: "Coproduct;", cp1: '\U00002210'},
	{name: "CounterClockwiseContourIntegral;", cp1: '\U00002233'},
	{name: "Cross;", cp1: '\U00002a2f'},
	{name: "Cscr;", cp1: '\U0001d49e'},
	{name: "Cup;", cp1: '\U000022d3'},
	{name: "CupCap;", cp1: '\U0000224d'},
	{name: "DD;", cp1: '\U00002145'},
	{name: "DDotrahd;", cp1: '\U00002911'},
	{name: "DJcy;", cp1: '\U00000402'},
	{name: "DScy;", cp1: '\U00000405'},
	{name: "DZcy;", cp1: '\U0000040f'},
	{name: "Dagger;", cp1: '\U00002021'},
	{name: "Darr;", cp1: '\U000021a1'},
	{name: "Dashv;", cp1: '\U00002ae4'},
	{name: "Dcaron;", cp1: '\U0000010e'},
	{name: "Dcy;", cp1: '\U00000414'},
	{name: "Del;", cp1: '\U00002207'},
	{name: "Delta;", cp1: '\U00000394'},
	{name: "Dfr;", cp1: '\U0001d507'},
	{name: "DiacriticalAcute;", cp1: '\U000000b4'},
	{name: "DiacriticalDot;", cp1: '\U000002d9'},
	{name: "DiacriticalDoubleAcute;", cp1: '\U000002dd'},
	{name: "DiacriticalGrave;", cp1: '`'},
	{name: "DiacriticalTilde;", cp1: '\U000002dc'},
	{name: "Diamond;", cp1: '\U000022c4'},
	{name: "DifferentialD;", cp1: '\U00002146'},
	{name: "Dopf;", cp1: '\U0001d53b'},
	{name: "Dot;", cp1: '\U000000a8'},
	{name: "DotDot;", cp1: '\U000020dc'},
	{name: "DotEqual;", cp1: '\U00002250'},
	{name: "DoubleContourIntegral;", cp1: '\U0000222f'},
	{name: "DoubleDot;", cp1: '\U000000a8'},
	{name: "DoubleDownArrow;", cp1: '\U000021d3'},
	{name: "DoubleLeftArrow;", cp1: '\U000021d0'},
	{name: "DoubleLeftRightArrow;", cp1: '\U000021d4'},
	{name: "DoubleLeftTee;", cp1: '\U00002ae4'},
	{name: "DoubleLongLeftArrow;", cp1: '\U000027f8'},
	{name: "DoubleLongLeftRightArrow;", cp1: '\U000027fa'},
	{name: "DoubleLongRightArrow;", cp1: '\U000027f9'},
	{name: "DoubleRightArrow;", cp1: '\U000021d2'},
	{name: "DoubleRightTee;", cp1: '\U000022a8'},
	{name: "DoubleUpArrow;", cp1: '\U000021d1'},
	{name: "DoubleUpDownArrow;", cp1: '\U000021d5'},
	{name: "DoubleVerticalBar;", cp1: '\U00002225'},
	{name: "DownArrow;", cp1: '\U00002193'},
	{name: "DownArrowBar;", cp1: '\U00002913'},
	{name: "DownArrowUpArrow;", cp1: '\U000021f5'},
	{name: "DownBreve;", cp1: '\U00000311'},
	{name: "DownLeftRightVector;", cp1: '\U00002950'},
	{name: "DownLeftTeeVector;", cp1: '\U0000295e'},
	{name: "DownLeftVector;", cp1: '\U000021bd'},
	{name: "DownLeftVectorBar;", cp1: '\U00002956'},
	{name: "DownRightTeeVector;", cp1: '\U0000295f'},
	{name: "DownRightVector;", cp1: '\U000021c1'},
	{name: "DownRightVectorBar;", cp1: '\U00002957'},
	{name: "DownTee;", cp1: '\U000022a4'},
	{name: "DownTeeArrow;", cp1: '\U000021a7'},
	{name: "Downarrow;", cp1: '\U000021d3'},
	{name: "Dscr;", cp1: '\U0001d49f'},
	{name: "Dstrok;", cp1: '\U00000110'},
	{name: "ENG;", cp1: '\U0000014a'},
	{name: "ETH", cp1: '\U000000d0'},
	{name: "ETH;", cp1: '\U000000d0'},
	{name: "Eacute", cp1: '\U000000c9'},
	{name: "Eacute;", cp1: '\U000000c9'},
	{name: "Ecaron;", cp1: '\U0000011a'},
	{name: "Ecirc", cp1: '\U000000ca'},
	{name: "Ecirc;", cp1: '\U000000ca'},
	{name: "Ecy;", cp1: '\U0000042d'},
	{name: "Edot;", cp1: '\U00000116'},
	{name: "Efr;", cp1: '\U0001d508'},
	{name: "Egrave", cp1: '\U000000c8'},
	{name: "Egrave;", cp1: '\U000000c8'},
	{name: "Element;", cp1: '\U00002208'},
	{name: "Emacr;", cp1: '\U00000112'},
	{name: "EmptySmallSquare;", cp1: '\U000025fb'},
	{name: "EmptyVerySmallSquare;", cp1: '\U000025ab'},
	{name: "Eogon;", cp1: '\U00000118'},
	{name: "Eopf;", cp1: '\U0001d53c'},
	{name: "Epsilon;", cp1: '\U00000395'},
	{name: "Equal;", cp1: '\U00002a75'},
	{name: "EqualTilde;", cp1: '\U00002242'},
	{name: "Equilibrium;", cp1: '\U000021cc'},
	{name: "Escr;", cp1: '\U00002130'},
	{name: "Esim;", cp1: '\U00002a73'},
	{name: "Eta;", cp1: '\U00000397'},
	{name: "Euml", cp1: '\U000000cb'},
	{name: "Euml;", cp1: '\U000000cb'},
	{name: "Exists;", cp1: '\U00002203'},
	{name: "ExponentialE;", cp1: '\U00002147'},
	{name: "Fcy;", cp1: '\U00000424'},
	{name: "Ffr;", cp1: '\U0001d509'},
	{name: "FilledSmallSquare;", cp1: '\U000025fc'},
	{name: "FilledVerySmallSquare;", cp1: '\U000025aa'},
	{name: "Fopf;", cp1: '\U0001d53d'},
	{name: "ForAll;", cp1: '\U00002200'},
	{name: "Fouriertrf;", cp1: '\U00002131'},
	{name: "Fscr;", cp1: '\U00002131'},
	{name: "GJcy;", cp1: '\U00000403'},
	{name: "GT", cp1: '>'},
	{name: "GT;", cp1: '>'},
	{name: "Gamma;", cp1: '\U00000393'},
	{name: "Gammad;", cp1: '\U000003dc'},
	{name: "Gbreve;", cp1: '\U0000011e'},
	{name: "Gcedil;", cp1: '\U00000122'},
	{name: "Gcirc;", cp1: '\U0000011c'},
	{name: "Gcy;", cp1: '\U00000413'},
	{name: "Gdot;", cp1: '\U00000120'},
	{name: "Gfr;", cp1: '\U0001d50a'},
	{name: "Gg;", cp1: '\U000022d9'},
	{name: "Gopf;", cp1: '\U0001d53e'},
	{name: "GreaterEqual;", cp1: '\U00002265'},
	{name: "GreaterEqualLess;", cp1: '\U000022db'},
	{name: "GreaterFullEqual;", cp1: '\U00002267'},
	{name: "GreaterGreater;", cp1: '\U00002aa2'},
	{name: "GreaterLess;", cp1: '\U00002277'},
	{name: "GreaterSlantEqual;", cp1: '\U00002a7e'},
	{name: "GreaterTilde;", cp1: '\U00002273'},
	{name: "Gscr;", cp1: '\U0001d4a2'},
	{name: "Gt;", cp1: '\U0000226b'},
	{name: "HARDcy;", cp1: '\U0000042a'},
	{name: "Hacek;", cp1: '\U000002c7'},
	{name: "Hat;", cp1: '^'},
	{name: "Hcirc;", cp1: '\U00000124'},
	{name: "Hfr;", cp1: '\U0000210c'},
	{name: "HilbertSpace;", cp1: '\U0000210b'},
	{name: "Hopf;", cp1: '\U0000210d'},
	{name: "HorizontalLine;", cp1: '\U00002500'},
	{name: "Hscr;", cp1: '\U0000210b'},
	{name: "Hstrok;", cp1: '\U00000126'},
	{name: "HumpDownHump;", cp1: '\U0000224e'},
	{name: "HumpEqual;", cp1: '\U0000224f'},
	{name: "IEcy;", cp1: '\U00000415'},
	{name: "IJlig;", cp1: '\U00000132'},
	{name: "IOcy;", cp1: '\U00000401'},
	{name: "Iacute", cp1: '\U000000cd'},
	{name: "Iacute;", cp1: '\U000000cd'},
	{name: "Icirc", cp1: '\U000000ce'},
	{name: "Icirc;", cp1: '\U000000ce'},
	{name: "Icy;", cp1: '\U00000418'},
	{name: "Idot;", cp1: '\U00000130'},
	{name: "Ifr;", cp1: '\U00002111'},
	{name: "Igrave", cp1: '\U000000cc'},
	{name: "Igrave;", cp1: '\U000000cc'},
	{name: "Im;", cp1: '\U00002111'},
	{name: "Imacr;", cp1: '\U0000012a'},
	{name: "ImaginaryI;", cp1: '\U00002148'},
	{name: "Implies;", cp1: '\U000021d2'},
	{name: "Int;", cp1: '\U0000222c'},
	{name: "Integral;", cp1: '\U0000222b'},
	{name: "Intersection;", cp1: '\U000022c2'},
	{name: "InvisibleComma;", cp1: '\U00002063'},
	{name: "InvisibleTimes;", cp1: '\U00002062'},
	{name: "Iogon;", cp1: '\U0000012e'},
	{name: "Iopf;", cp1: '\U0001d540'},
	{name: "Iota;", cp1: '\U00000399'},
	{name: "Iscr;", cp1: '\U00002110'},
	{name: "Itilde;", cp1: '\U00000128'},
	{name: "Iukcy;", cp1: '\U00000406'},
	{name: "Iuml", cp1: '\U000000cf'},
	{name: "Iuml;", cp1: '\U000000cf'},
	{name: "Jcirc;", cp1: '\U00000134'},
	{name: "Jcy;", cp1: '\U00000419'},
	{name: "Jfr;", cp1: '\U0001d50d'},
	{name: "Jopf;", cp1: '\U0001d541'},
	{name: "Jscr;", cp1: '\U0001d4a5'},
	{name: "Jsercy;", cp1: '\U00000408'},
	{name: "Jukcy;", cp1: '\U00000404'},
	{name: "KHcy;", cp1: '\U00000425'},
	{name: "KJcy;", cp1: '\U0000040c'},
	{name: "Kappa;", cp1: '\U0000039a'},
	{name: "Kcedil;", cp1: '\U00000136'},
	{name: "Kcy;", cp1: '\U0000041a'},
	{name: "Kfr;", cp1: '\U0001d50e'},
	{name: "Kopf;", cp1: '\U0001d542'},
	{name: "Kscr;", cp1: '\U0001d4a6'},
	{name: "LJcy;", cp1: '\U00000409'},
	{name: "LT", cp1: '<'},
	{name: "LT;", cp1: '<'},
	{name: "Lacute;", cp1: '\U00000139'},
	{name: "Lambda;", cp1: '\U0000039b'},
	{name: "Lang;", cp1: '\U000027ea'},
	{name: "Laplacetrf;", cp1: '\U00002112'},
	{name: "Larr;", cp1: '\U0000219e'},
	{name: "Lcaron;", cp1: '\U0000013d'},
	{name: "Lcedil;", cp1: '\U0000013b'},
	{name: "Lcy;", cp1: '\U0000041b'},
	{name: "LeftAngleBracket;", cp1: '\U000027e8'},
	{name: "LeftArrow;", cp1: '\U00002190'},
	{name: "LeftArrowBar;", cp1: '\U000021e4'},
	{name: "LeftArrowRightArrow;", cp1: '\U000021c6'},
	{name: "LeftCeiling;", cp1: '\U00002308'},
	{name: "LeftDoubleBracket;", cp1: '\U000027e6'},
	{name: "LeftDownTeeVector;", cp1: '\U00002961'},
	{name: "LeftDownVector;", cp1: '\U000021c3'},
	{name: "LeftDownVectorBar;", cp1: '\U00002959'},
	{name: "LeftFloor;", cp1: '\U0000230a'},
	{name: "LeftRightArrow;", cp1: '\U00002194'},
	{name: "LeftRightVector;", cp1: '\U0000294e'},
	{name: "LeftTee;", cp1: '\U000022a3'},
	{name: "LeftTeeArrow;", cp1: '\U000021a4'},
	{name: "LeftTeeVector;", cp1: '\U0000295a'},
	{name: "LeftTriangle;", cp1: '\U000022b2'},
	{name: "LeftTriangleBar;", cp1: '\U000029cf'},
	{name: "LeftTriangleEqual;", cp1: '\U000022b4'},
	{name: "LeftUpDownVector;", cp1: '\U00002951'},
	{name: "LeftUpTeeVector;", cp1: '\U00002960'},
	{name: "LeftUpVector;", cp1: '\U000021bf'},
	{name: "LeftUpVectorBar;", cp1: '\U00002958'},
	{name: "LeftVector;", cp1: '\U000021bc'},
	{name: "LeftVectorBar;", cp1: '\U00002952'},
	{name: "Leftarrow;", cp1: '\U000021d0'},
	{name: "Leftrightarrow;", cp1: '\U000021d4'},
	{name: "LessEqualGreater;", cp1: '\U000022da'},
	{name: "LessFullEqual;", cp1: '\U00002266'},
	{name: "LessGreater;", cp1: '\U00002276'},
	{name: "LessLess;", cp1: '\U00002aa1'},
	{name: "LessSlantEqual;", cp1: '\U00002a7d'},
	{name: "LessTilde;", cp1: '\U00002272'},
	{name: "Lfr;", cp1: '\U0001d50f'},
	{name: "Ll;", cp1: '\U000022d8'},
	{name: "Lleftarrow;", cp1: '\U000021da'},
	{name: "Lmidot;", cp1: '\U0000013f'},
	{name: "LongLeftArrow;", cp1: '\U000027f5'},
	{name: "LongLeftRightArrow;", cp1: '\U000027f7'},
	{name: "LongRightArrow;", cp1: '\U000027f6'},
	{name: "Longleftarrow;", cp1: '\U000027f8'},
	{name: "Longleftrightarrow;", cp1: '\U000027fa'},
	{name: "Longrightarrow;", cp1: '\U000027f9'},
	{name: "Lopf;", cp1: '\U0001d543'},
	{name: "LowerLeftArrow;", cp1: '\U00002199'},
	{name: "LowerRightArrow;", cp1: '\U00002198'},
	{name: "Lscr;", cp1: '\U00002112'},
	{name: "Lsh;", cp1: '\U000021b0'},
	{name: "Lstrok;", cp1: '\U00000141'},
	{name: "Lt;", cp1: '\U0000226a'},
	{name: "Map;", cp1: '\U00002905'},
	{name: "Mcy;", cp1: '\U0000041c'},
	{name: "MediumSpace;", cp1: '\U0000205f'},
	{name: "Mellintrf;", cp1: '\U00002133'},
	{name: "Mfr;", cp1: '\U0001d510'},
	{name: "MinusPlus;", cp1: '\U00002213'},
	{name: "Mopf;", cp1: '\U0001d544'},
	{name: "Mscr;", cp1: '\U00002133'},
	{name: "Mu;", cp1: '\U0000039c'},
	{name: "NJcy;", cp1: '\U0000040a'},
	{name: "Nacute;", cp1: '\U00000143'},
	{name: "Ncaron;", cp1: '\U00000147'},
	{name: "Ncedil;", cp1: '\U00000145'},
	{name: "Ncy;", cp1: '\U0000041d'},
	{name: "NegativeMediumSpace;", cp1: '\U0000200b'},
	{name: "NegativeThickSpace;", cp1: '\U0000200b'},
	{name: "NegativeThinSpace;", cp1: '\U0000200b'},
	{name: "NegativeVeryThinSpace;", cp1: '\U0000200b'},
	{name: "NestedGreaterGreater;", cp1: '\U0000226b'},
	{name: "NestedLessLess;", cp1: '\U0000226a'},
	{name: "NewLine;", cp1: '\U0000000a'},
	{name: "Nfr;", cp1: '\U0001d511'},
	{name: "NoBreak;", cp1: '\U00002060'},
	{name: "NonBreakingSpace;", cp1: '\U000000a0'},
	{name: "Nopf;", cp1: '\U00002115'},
	{name: "Not;", cp1: '\U00002aec'},
	{name: "NotCongruent;", cp1: '\U00002262'},
	{name: "NotCupCap;", cp1: '\U0000226d'},
	{name: "NotDoubleVerticalBar;", cp1: '\U00002226'},
	{name: "NotElement;", cp1: '\U00002209'},
	{name: "NotEqual;", cp1: '\U00002260'},
	{name: "NotEqualTilde;", cp1: '\U00002242', cp2: '\U00000338', hasCP2: true},
	{name: "NotExists;", cp1: '\U00002204'},
	{name: "NotGreater;", cp1: '\U0000226f'},
	{name: "NotGreaterEqual;", cp1: '\U00002271'},
	{name: "NotGreaterFullEqual;", cp1: '\U00002267', cp2: '\U00000338', hasCP2: true},
	{name: "NotGreaterGreater;", cp1: '\U0000226b', cp2: '\U00000338', hasCP2: true},
	{name: "NotGreaterLess;", cp1: '\U00002279'},
	{name: "NotGreaterSlantEqual;", cp1: '\U00002a7e', cp2: '\U00000338', hasCP2: true},
	{name: "NotGreaterTilde;", cp1: '\U00002275'},
	{name: "NotHumpDownHump;", cp1: '\U0000224e', cp2: '\U00000338', hasCP2: true},
	{name: "NotHumpEqual;", cp1: '\U0000224f', cp2: '\U00000338', hasCP2: true},
	{name: "NotLeftTriangle;", cp1: '\U000022ea'},
	{name: "NotLeftTriangleBar;", cp1: '\U000029cf', cp2: '\U00000338', hasCP2: true},
	{name: "NotLeftTriangleEqual;", cp1: '\U000022ec'},
	{name: "NotLess;", cp1: '\U0000226e'},
	{name: "NotLessEqual;", cp1: '\U00002270'},
	{name: "NotLessGreater;", cp1: '\U00002278'},
	{name: "NotLessLess;", cp1: '\U0000226a', cp2: '\U00000338', hasCP2: true},
	{name: "NotLessSlantEqual;", cp1: '\U00002a7d', cp2: '\U00000338', hasCP2: true},
	{name: "NotLessTilde;", cp1: '\U00002274'},
	{name: "NotNestedGreaterGreater;", cp1: '\U00002aa2', cp2: '\U00000338', hasCP2: true},
	{name: "NotNestedLessLess;", cp1: '\U00002aa1', cp2: '\U00000338', hasCP2: true},
	{name: "NotPrecedes;", cp1: '\U00002280'},
	{name: "NotPrecedesEqual;", cp1: '\U00002aaf', cp2: '\U00000338', hasCP2: true},
	{name: "NotPrecedesSlantEqual;", cp1: '\U000022e0'},
	{name: "NotReverseElement;", cp1: '\U0000220c'},
	{name: "NotRightTriangle;", cp1: '\U000022eb'},
	{name: "NotRightTriangleBar;", cp1: '\U000029d0', cp2: '\U00000338', hasCP2: true},
	{name: "NotRightTriangleEqual;", cp1: '\U000022ed'},
	{name: "NotSquareSubset;", cp1: '\U0000228f', cp2: '\U00000338', hasCP2: true},
	{name: "NotSquareSubsetEqual;", cp1: '\U000022e2'},
	{name: "NotSquareSuperset;", cp1: '\U00002290', cp2: '\U00000338', hasCP2: true},
	{name: "NotSquareSupersetEqual;", cp1: '\U000022e3'},
	{name: "NotSubset;", cp1: '\U00002282', cp2: '\U000020d2', hasCP2: true},
	{name: "NotSubsetEqual;", cp1: '\U00002288'},
	{name: "NotSucceeds;", cp1: '\U00002281'},
	{name: "NotSucceedsEqual;", cp1: '\U00002ab0', cp2: '\U00000338', hasCP2: true},
	{name: "NotSucceedsSlantEqual;", cp1: '\U000022e1'},
	{name: "NotSucceedsTilde;", cp1: '\U0000227f', cp2: '\U00000338', hasCP2: true},
	{name: "NotSuperset;", cp1: '\U00002283', cp2: '\U000020d2', hasCP2: true},
	{name: "NotSupersetEqual;", cp1: '\U00002289'},
	{name: "NotTilde;", cp1: '\U00002241'},
	{name: "NotTildeEqual;", cp1: '\U00002244'},
	{name: "NotTildeFullEqual;", cp1: '\U00002247'},
	{name: "NotTildeTilde;", cp1: '\U00002249'},
	{name: "NotVerticalBar;", cp1: '\U00002224'},
	{name: "Nscr;", cp1: '\U0001d4a9'},
	{name: "Ntilde", cp1: '\U000000d1'},
	{name: "Ntilde;", cp1: '\U000000d1'},
	{name: "Nu;", cp1: '\U0000039d'},
	{name: "OElig;", cp1: '\U00000152'},
	{name: "Oacute", cp1: '\U000000d3'},
	{name: "Oacute;", cp1: '\U000000d3'},
	{name: "Ocirc", cp1: '\U000000d4'},
	{name: "Ocirc;", cp1: '\U000000d4'},
	{name: "Ocy;", cp1: '\U0000041e'},
	{name: "Odblac;", cp1: '\U00000150'},
	{name: "Ofr;", cp1: '\U0001d512'},
	{name: "Ograve", cp1: '\U000000d2'},
	{name: "Ograve;", cp1: '\U000000d2'},
	{name: "Omacr;", cp1: '\U0000014c'},
	{name: "Omega;", cp1: '\U000003a9'},
	{name: "Omicron;", cp1: '\U0000039f'},
	{name: "Oopf;", cp1: '\U0001d546'},
	{name: "OpenCurlyDoubleQuote;", cp1: '\U0000201c'},
	{name: "OpenCurlyQuote;", cp1: '\U00002018'},
	{name: "Or;", cp1: '\U00002a54'},
	{name: "Oscr;", cp1: '\U0001d4aa'},
	{name: "Oslash", cp1: '\U000000d8'},
	{name: "Oslash;", cp1: '\U000000d8'},
	{name: "Otilde", cp1: '\U000000d5'},
	{name: "Otilde;", cp1: '\U000000d5'},
	{name: "Otimes;", cp1: '\U00002a37'},
	{name: "Ouml", cp1: '\U000000d6'},
	{name: "Ouml;", cp1: '\U000000d6'},
	{name: "OverBar;", cp1: '\U0000203e'},
	{name: "OverBrace;", cp1: '\U000023de'},
	{name: "OverBracket;", cp1: '\U000023b4'},
	{name: "OverParenthesis;", cp1: '\U000023dc'},
	{name: "PartialD;", cp1: '\U00002202'},
	{name: "Pcy;", cp1: '\U0000041f'},
	{name: "Pfr;", cp1: '\U0001d513'},
	{name: "Phi;", cp1: '\U000003a6'},
	{name: "Pi;", cp1: '\U000003a0'},
	{name: "PlusMinus;", cp1: '\U000000b1'},
	{name: "Poincareplane;", cp1: '\U0000210c'},
	{name: "Popf;", cp1: '\U00002119'},
	{name: "Pr;", cp1: '\U00002abb'},
	{name: "Precedes;", cp1: '\U0000227a'},
	{name: "PrecedesEqual;", cp1: '\U00002aaf'},
	{name: "PrecedesSlantEqual;", cp1: '\U0000227c'},
	{name: "PrecedesTilde;", cp1: '\U0000227e'},
	{name: "Prime;", cp1: '\U00002033'},
	{name: "Product;", cp1: '\U0000220f'},
	{name: "Proportion;", cp1: '\U00002237'},
	{name: "Proportional;", cp1: '\U0000221d'},
	{name: "Pscr;", cp1: '\U0001d4ab'},
	{name: "Psi;", cp1: '\U000003a8'},
	{name: "QUOT", cp1: '"'},
	{name: "QUOT;", cp1: '"'},
	{name: "Qfr;", cp1: '\U0001d514'},
	{name: "Qopf;", cp1: '\U0000211a'},
	{name: "Qscr;", cp1: '\U0001d4ac'},
	{name: "RBarr;", cp1: '\U00002910'},
	{name: "REG", cp1: '\U000000ae'},
	{name: "REG;", cp1: '\U000000ae'},
	{name: "Racute;", cp1: '\U00000154'},
	{name: "Rang;", cp1: '\U000027eb'},
	{name: "Rarr;", cp1: '\U000021a0'},
	{name: "Rarrtl;", cp1: '\U00002916'},
	{name: "Rcaron;", cp1: '\U00000158'},
	{name: "Rcedil;", cp1: '\U00000156'},
	{name: "Rcy;", cp1: '\U00000420'},
	{name: "Re;", cp1: '\U0000211c'},
	{name: "ReverseElement;", cp1: '\U0000220b'},
	{name: "ReverseEquilibrium;", cp1: '\U000021cb'},
	{name: "ReverseUpEquilibrium;", cp1: '\U0000296f'},
	{name: "Rfr;", cp1: '\U0000211c'},
	{name: "Rho;", cp1: '\U000003a1'},
	{name: "RightAngleBracket;", cp1: '\U000027e9'},
	{name: "RightArrow;", cp1: '\U00002192'},
	{name: "RightArrowBar;", cp1: '\U000021e5'},
	{name: "RightArrowLeftArrow;", cp1: '\U000021c4'},
	{name: "RightCeiling;", cp1: '\U00002309'},
	{name: "RightDoubleBracket;", cp1: '\U000027e7'},
	{name: "RightDownTeeVector;", cp1: '\U0000295d'},
	{name: "RightDownVector;", cp1: '\U000021c2'},
	{name: "RightDownVectorBar;", cp1: '\U00002955'},
	{name: "RightFloor;", cp1: '\U0000230b'},
	{name: "RightTee;", cp1: '\U000022a2'},
	{name: "RightTeeArrow;", cp1: '\U000021a6'},
	{name: "RightTeeVector;", cp1: '\U0000295b'},
	{name: "RightTriangle;", cp1: '\U000022b3'},
	{name: "RightTriangleBar;", cp1: '\U000029d0'},
	{name: "RightTriangleEqual;", cp1: '\U000022b5'},
	{name: "RightUpDownVector;", cp1: '\U0000294f'},
	{name: "RightUpTeeVector;", cp1: '\U0000295c'},
	{name: "RightUpVector;", cp1: '\U000021be'},
	{name: "RightUpVectorBar;", cp1: '\U00002954'},
	{name: "RightVector;", cp1: '\U000021c0'},
	{name: "RightVectorBar;", cp1: '\U00002953'},
	{name: "Rightarrow;", cp1: '\U000021d2'},
	{name: "Ropf;", cp1: '\U0000211d'},
	{name: "RoundImplies;", cp1: '\U00002970'},
	{name: "Rrightarrow;", cp1: '\U000021db'},
	{name: "Rscr;", cp1: '\U0000211b'},
	{name: "Rsh;", cp1: '\U000021b1'},
	{name: "RuleDelayed;", cp1: '\U000029f4'},
	{name: "SHCHcy;", cp1: '\U00000429'},
	{name: "SHcy;", cp1: '\U00000428'},
	{name: "SOFTcy;", cp1: '\U0000042c'},
	{name: "Sacute;", cp1: '\U0000015a'},
	{name: "Sc;", cp1: '\U00002abc'},
	{name: "Scaron;", cp1: '\U00000160'},
	{name: "Scedil;", cp1: '\U0000015e'},
	{name: "Scirc;", cp1: '\U0000015c'},
	{name: "Scy;", cp1: '\U00000421'},
	{name: "Sfr;", cp1: '\U0001d516'},
	{name: "ShortDownArrow;", cp1: '\U00002193'},
	{name: "ShortLeftArrow;", cp1: '\U00002190'},
	{name: "ShortRightArrow;", cp1: '\U00002192'},
	{name: "ShortUpArrow;", cp1: '\U00002191'},
	{name: "Sigma;", cp1: '\U000003a3'},
	{name: "SmallCircle;", cp1: '\U00002218'},
	{name: "Sopf;", cp1: '\U0001d54a'},
	{name: "Sqrt;", cp1: '\U0000221a'},
	{name: "Square;", cp1: '\U000025a1'},
	{name: "SquareIntersection;", cp1: '\U00002293'},
	{name: "SquareSubset;", cp1: '\U0000228f'},
	{name: "SquareSubsetEqual;", cp1: '\U00002291'},
	{name: "SquareSuperset;", cp1: '\U00002290'},
	{name: "SquareSupersetEqual;", cp1: '\U00002292'},
	{name: "SquareUnion;", cp1: '\U00002294'},
	{name: "Sscr;", cp1: '\U0001d4ae'},
	{name: "Star;", cp1: '\U000022c6'},
	{name: "Sub;", cp1: '\U000022d0'},
	{name: "Subset;", cp1: '\U000022d0'},
	{name: "SubsetEqual;", cp1: '\U00002286'},
	{name: "Succeeds;", cp1: '\U0000227b'},
	{name: "SucceedsEqual;", cp1: '\U00002ab0'},
	{name: "SucceedsSlantEqual;", cp1: '\U0000227d'},
	{name: "SucceedsTilde;", cp1: '\U0000227f'},
	{name: "SuchThat;", cp1: '\U0000220b'},
	{name: "Sum;", cp1: '\U00002211'},
	{name: "Sup;", cp1: '\U000022d1'},
	{name: "Superset;", cp1: '\U00002283'},
	{name: "SupersetEqual;", cp1: '\U00002287'},
	{name: "Supset;", cp1: '\U000022d1'},
	{name: "THORN", cp1: '\U000000de'},
	{name: "THORN;", cp1: '\U000000de'},
	{name: "TRADE;", cp1: '\U00002122'},
	{name: "TSHcy;", cp1: '\U0000040b'},
	{name: "TScy;", cp1: '\U00000426'},
	{name: "Tab;", cp1: '\U00000009'},
	{name: "Tau;", cp1: '\U000003a4'},
	{name: "Tcaron;", cp1: '\U00000164'},
	{name: "Tcedil;", cp1: '\U00000162'},
	{name: "Tcy;", cp1: '\U00000422'},
	{name: "Tfr;", cp1: '\U0001d517'},
	{name: "Therefore;", cp1: '\U00002234'},
	{name: "Theta;", cp1: '\U00000398'},
	{name: "ThickSpace;", cp1: '\U0000205f', cp2: '\U0000200a', hasCP2: true},
	{name: "ThinSpace;", cp1: '\U00002009'},
	{name: "Tilde;", cp1: '\U0000223c'},
	{name: "TildeEqual;", cp1: '\U00002243'},
	{name: "TildeFullEqual;", cp1: '\U00002245'},
	{name: "TildeTilde;", cp1: '\U00002248'},
	{name: "Topf;", cp1: '\U0001d54b'},
	{name: "TripleDot;", cp1: '\U000020db'},
	{name: "Tscr;", cp1: '\U0001d4af'},
	{name: "Tstrok;", cp1: '\U00000166'},
	{name: "Uacute", cp1: '\U000000da'},
	{name: "Uacute;", cp1: '\U000000da'},
	{name: "Uarr;", cp1: '\U0000219f'},
	{name: "Uarrocir;", cp1: '\U00002949'},
	{name: "Ubrcy;", cp1: '\U0000040e'},
	{name: "Ubreve;", cp1: '\U0000016c'},
	{name: "Ucirc", cp1: '\U000000db'},
	{name: "Ucirc;", cp1: '\U000000db'},
	{name: "Ucy;", cp1: '\U00000423'},
	{name: "Udblac;", cp1: '\U00000170'},
	{name: "Ufr;", cp1: '\U0001d518'},
	{name: "Ugrave", cp1: '\U000000d9'},
	{name: "Ugrave;", cp1: '\U000000d9'},
	{name: "Umacr;", cp1: '\U0000016a'},
	{name: "UnderBar;", cp1: '_'},
	{name: "UnderBrace;", cp1: '\U000023df'},
	{name: "UnderBracket;", cp1: '\U000023b5'},
	{name: "UnderParenthesis;", cp1: '\U000023dd'},
	{name: "Union;", cp1: '\U000022c3'},
	{name: "UnionPlus;", cp1: '\U0000228e'},
	{name: "Uogon;", cp1: '\U00000172'},
	{name: "Uopf;", cp1: '\U0001d54c'},
	{name: "UpArrow;", cp1: '\U00002191'},
	{name: "UpArrowBar;", cp1: '\U00002912'},
	{name: "UpArrowDownArrow;", cp1: '\U000021c5'},
	{name: "UpDownArrow;", cp1: '\U00002195'},
	{name: "UpEquilibrium;", cp1: '\U0000296e'},
	{name: "UpTee;", cp1: '\U000022a5'},
	{name: "UpTeeArrow;", cp1: '\U000021a5'},
	{name: "Uparrow;", cp1: '\U000021d1'},
	{name: "Updownarrow;", cp1: '\U000021d5'},
	{name: "UpperLeftArrow;", cp1: '\U00002196'},
	{name: "UpperRightArrow;", cp1: '\U00002197'},
	{name: "Upsi;", cp1: '\U000003d2'},
	{name: "Upsilon;", cp1: '\U000003a5'},
	{name: "Uring;", cp1: '\U0000016e'},
	{name: "Uscr;", cp1: '\U0001d4b0'},
	{name: "Utilde;", cp1: '\U00000168'},
	{name: "Uuml", cp1: '\U000000dc'},
	{name: "Uuml;", cp1: '\U000000dc'},
	{name: "VDash;", cp1: '\U000022ab'},
	{name: "Vbar;", cp1: '\U00002aeb'},
	{name: "Vcy;", cp1: '\U00000412'},
	{name: "Vdash;", cp1: '\U000022a9'},
	{name: "Vdashl;", cp1: '\U00002ae6'},
	{name: "Vee;", cp1: '\U000022c1'},
	{name: "Verbar;", cp1: '\U00002016'},
	{name: "Vert;", cp1: '\U00002016'},
	{name: "VerticalBar;", cp1: '\U00002223'},
	{name: "VerticalLine;", cp1: '|'},
	{name: "VerticalSeparator;", cp1: '\U00002758'},
	{name: "VerticalTilde;", cp1: '\U00002240'},
	{name: "VeryThinSpace;", cp1: '\U0000200a'},
	{name: "Vfr;", cp1: '\U0001d519'},
	{name: "Vopf;", cp1: '\U0001d54d'},
	{name: "Vscr;", cp1: '\U0001d4b1'},
	{name: "Vvdash;", cp1: '\U000022aa'},
	{name: "Wcirc;", cp1: '\U00000174'},
	{name: "Wedge;", cp1: '\U000022c0'},
	{name: "Wfr;", cp1: '\U0001d51a'},
	{name: "Wopf;", cp1: '\U0001d54e'},
	{name: "Wscr;", cp1: '\U0001d4b2'},
	{name: "Xfr;", cp1: '\U0001d51b'},
	{name: "Xi;", cp1: '\U0000039e'},
	{name: "Xopf;", cp1: '\U0001d54f'},
	{name: "Xscr;", cp1: '\U0001d4b3'},
	{name: "YAcy;", cp1: '\U0000042f'},
	{name: "YIcy;", cp1: '\U00000407'},
	{name: "YUcy;", cp1: '\U0000042e'},
	{name: "Yacute", cp1: '\U000000dd'},
	{name: "Yacute;", cp1: '\U000000dd'},
	{name: "Ycirc;", cp1: '\U00000176'},
	{name: "Ycy;", cp1: '\U0000042b'},
	{name: "Yfr;", cp1: '\U0001d51c'},
	{name: "Yopf;", cp1: '\U0001d550'},
	{name: "Yscr;", cp1: '\U0001d4b4'},
	{name: "Yuml;", cp1: '\U00000178'},
	{name: "ZHcy;", cp1: '\U00000416'},
	{name: "Zacute;", cp1: '\U00000179'},
	{name: "Zcaron;", cp1: '\U0000017d'},
	{name: "Zcy;", cp1: '\U00000417'},
	{name: "Zdot;", cp1: '\U0000017b'},
	{name: "ZeroWidthSpace;", cp1: '\U0000200b'},
	{name: "Zeta;", cp1: '\U00000396'},
	{name: "Zfr;", cp1: '\U00002128'},
	{name: "Zopf;", cp1: '\U00002124'},
	{name: "Zscr;", cp1: '\U0001d4b5'},
	{name: "aacute", cp1: '\U000000e1'},
	{name: "aacute;", cp1: '\U000000e1'},
	{name: "abreve;", cp1: '\U00000103'},
	{name: "ac;", cp1: '\U0000223e'},
	{name: "acE;", cp1: '\U0000223e', cp2: '\U00000333', hasCP2: true},
	{name: "acd;", cp1: '\U0000223f'},
	{name: "acirc", cp1: '\U000000e2'},
	{name: "acirc;", cp1: '\U000000e2'},
	{name: "acute", cp1: '\U000000b4'},
	{name: "acute;", cp1: '\U000000b4'},
	{name: "acy;", cp1: '\U00000430'},
	{name: "aelig", cp1: '\U000000e6'},
	{name: "aelig;", cp1: '\U000000e6'},
	{name: "af;", cp1: '\U00002061'},
	{name: "afr;", cp1: '\U0001d51e'},
	{name: "agrave", cp1: '\U000000e0'},
	{name: "agrave;", cp1: '\U000000e0'},
	{name: "alefsym;", cp1: '\U00002135'},
	{name: "aleph;", cp1: '\U00002135'},
	{name: "alpha;", cp1: '\U000003b1'},
	{name: "amacr;", cp1: '\U00000101'},
	{name: "amalg;", cp1: '\U00002a3f'},
	{name: "amp", cp1: '&'},
	{name: "amp;", cp1: '&'},
	{name: "and;", cp1: '\U00002227'},
	{name: "andand;", cp1: '\U00002a55'},
	{name: "andd;", cp1: '\U00002a5c'},
	{name: "andslope;", cp1: '\U00002a58'},
	{name: "andv;", cp1: '\U00002a5a'},
	{name: "ang;", cp1: '\U00002220'},
	{name: "ange;", cp1: '\U000029a4'},
	{name: "angle;", cp1: '\U00002220'},
	{name: "angmsd;", cp1: '\U00002221'},
	{name: "angmsdaa;", cp1: '\U000029a8'},
	{name: "angmsdab;", cp1: '\U000029a9'},
	{name: "angmsdac;", cp1: '\U000029aa'},
	{name: "angmsdad;", cp1: '\U000029ab'},
	{name: "angmsdae;", cp1: '\U000029ac'},
	{name: "angmsdaf;", cp1: '\U000029ad'},
	{name: "angmsdag;", cp1: '\U000029ae'},
	{name: "angmsdah;", cp1: '\U000029af'},
	{name: "angrt;", cp1: '\U0000221f'},
	{name: "angrtvb;", cp1: '\U000022be'},
	{name: "angrtvbd;", cp1: '\U0000299d'},
	{name: "angsph;", cp1: '\U00002222'},
	{name: "angst;", cp1: '\U000000c5'},
	{name: "angzarr;", cp1: '\U0000237c'},
	{name: "aogon;", cp1: '\U00000105'},
	{name: "aopf;", cp1: '\U0001d552'},
	{name: "ap;", cp1: '\U00002248'},
	{name: "apE;", cp1: '\U00002a70'},
	{name: "apacir;", cp1: '\U00002a6f'},
	{name: "ape;", cp1: '\U0000224a'},
	{name: "apid;", cp1: '\U0000224b'},
	{name: "apos;", cp1: '\''},
	{name: "approx;", cp1: '\U00002248'},
	{name: "approxeq;", cp1: '\U0000224a'},
	{name: "aring", cp1: '\U000000e5'},
	{name: "aring;", cp1: '\U000000e5'},
	{name: "ascr;", cp1: '\U0001d4b6'},
	{name: "ast;", cp1: '*'},
	{name: "asymp;", cp1: '\U00002248'},
	{name: "asympeq;", cp1: '\U0000224d'},
	{name: "atilde", cp1: '\U000000e3'},
	{name: "atilde;", cp1: '\U000000e3'},
	{name: "auml", cp1: '\U000000e4'},
	{name: "auml;", cp1: '\U000000e4'},
	{name: "awconint;", cp1: '\U00002233'},
	{name: "awint;", cp1: '\U00002a11'},
	{name: "bNot;", cp1: '\U00002aed'},
	{name: "backcong;", cp1: '\U0000224c'},
	{name: "backepsilon;", cp1: '\U000003f6'},
	{name: "backprime;", cp1: '\U00002035'},
	{name: "backsim;", cp1: '\U0000223d'},
	{name: "backsimeq;", cp1: '\U000022cd'},
	{name: "barvee;", cp1: '\U000022bd'},
	{name: "barwed;", cp1: '\U00002305'},
	{name: "barwedge;", cp1: '\U00002305'},
	{name: "bbrk;", cp1: '\U000023b5'},
	{name: "bbrktbrk;", cp1: '\U000023b6'},
	{name: "bcong;", cp1: '\U0000224c'},
	{name: "bcy;", cp1: '\U00000431'},
	{name: "bdquo;", cp1: '\U0000201e'},
	{name: "becaus;", cp1: '\U00002235'},
	{name: "because;", cp1: '\U00002235'},
	{name: "bemptyv;", cp1: '\U000029b0'},
	{name: "bepsi;", cp1: '\U000003f6'},
	{name: "bernou;", cp1: '\U0000212c'},
	{name: "beta;", cp1: '\U000003b2'},
	{name: "beth;", cp1: '\U00002136'},
	{name: "between;", cp1: '\U0000226c'},
	{name: "bfr;", cp1: '\U0001d51f'},
	{name: "bigcap;", cp1: '\U000022c2'},
	{name: "bigcirc;", cp1: '\U000025ef'},
	{name: "bigcup;", cp1: '\U000022c3'},
	{name: "bigodot;", cp1: '\U00002a00'},
	{name: "bigoplus;", cp1: '\U00002a01'},
	{name: "bigotimes;", cp1: '\U00002a02'},
	{name: "bigsqcup;", cp1: '\U00002a06'},
	{name: "bigstar;", cp1: '\U00002605'},
	{name: "bigtriangledown;", cp1: '\U000025bd'},
	{name: "bigtriangleup;", cp1: '\U000025b3'},
	{name: "biguplus;", cp1: '\U00002a04'},
	{name: "bigvee;", cp1: '\U000022c1'},
	{name: "bigwedge;", cp1: '\U000022c0'},
	{name: "bkarow;", cp1: '\U0000290d'},
	{name: "blacklozenge;", cp1: '\U000029eb'},
	{name: "blacksquare;", cp1: '\U000025aa'},
	{name: "blacktriangle;", cp1: '\U000025b4'},
	{name: "blacktriangledown;", cp1: '\U000025be'},
	{name: "blacktriangleleft;", cp1: '\U000025c2'},
	{name: "blacktriangleright;", cp1: '\U000025b8'},
	{name: "blank;", cp1: '\U00002423'},
	{name: "blk12;", cp1: '\U00002592'},
	{name: "blk14;", cp1: '\U00002591'},
	{name: "blk34;", cp1: '\U00002593'},
	{name: "block;", cp1: '\U00002588'},
	{name: "bne;", cp1: '=', cp2: '\U000020e5', hasCP2: true},
	{name: "bnequiv;", cp1: '\U00002261', cp2: '\U000020e5', hasCP2: true},
	{name: "bnot;", cp1: '\U00002310'},
	{name: "bopf;", cp1: '\U0001d553'},
	{name: "bot;", cp1: '\U000022a5'},
	{name: "bottom;", cp1: '\U000022a5'},
	{name: "bowtie;", cp1: '\U000022c8'},
	{name: "boxDL;", cp1: '\U00002557'},
	{name: "boxDR;", cp1: '\U00002554'},
	{name: "boxDl;", cp1: '\U00002556'},
	{name: "boxDr;", cp1: '\U00002553'},
	{name: "boxH;", cp1: '\U00002550'},
	{name: "boxHD;", cp1: '\U00002566'},
	{name: "boxHU;", cp1: '\U00002569'},
	{name: "boxHd;", cp1: '\U00002564'},
	{name: "boxHu;", cp1: '\U00002567'},
	{name: "boxUL;", cp1: '\U0000255d'},
	{name: "boxUR;", cp1: '\U0000255a'},
	{name: "boxUl;", cp1: '\U0000255c'},
	{name: "boxUr;", cp1: '\U00002559'},
	{name: "boxV;", cp1: '\U00002551'},
	{name: "boxVH;", cp1: '\U0000256c'},
	{name: "boxVL;", cp1: '\U00002563'},
	{name: "boxVR;", cp1: '\U00002560'},
	{name: "boxVh;", cp1: '\U0000256b'},
	{name: "boxVl;", cp1: '\U00002562'},
	{name: "boxVr;", cp1: '\U0000255f'},
	{name: "boxbox;", cp1: '\U000029c9'},
	{name: "boxdL;", cp1: '\U00002555'},
	{name: "boxdR;", cp1: '\U00002552'},
	{name: "boxdl;", cp1: '\U00002510'},
	{name: "boxdr;", cp1: '\U0000250c'},
	{name: "boxh;", cp1: '\U00002500'},
	{name: "boxhD;", cp1: '\U00002565'},
	{name: "boxhU;", cp1: '\U00002568'},
	{name: "boxhd;", cp1: '\U0000252c'},
	{name: "boxhu;", cp1: '\U00002534'},
	{name: "boxminus;", cp1: '\U0000229f'},
	{name: "boxplus;", cp1: '\U0000229e'},
	{name: "boxtimes;", cp1: '\U000022a0'},
	{name: "boxuL;", cp1: '\U0000255b'},
	{name: "boxuR;", cp1: '\U00002558'},
	{name: "boxul;", cp1: '\U00002518'},
	{name: "boxur;", cp1: '\U00002514'},
	{name: "boxv;", cp1: '\U00002502'},
	{name: "boxvH;", cp1: '\U0000256a'},
	{name: "boxvL;", cp1: '\U00002561'},
	{name: "boxvR;", cp1: '\U0000255e'},
	{name: "boxvh;", cp1: '\U0000253c'},
	{name: "boxvl;", cp1: '\U00002524'},
	{name: "boxvr;", cp1: '\U0000251c'},
	{name: "bprime;", cp1: '\U00002035'},
	{name: "breve;", cp1: '\U000002d8'},
	{name: "brvbar", cp1: '\U000000a6'},
	{name: "brvbar;", cp1: '\U000000a6'},
	{name: "bscr;", cp1: '\U0001d4b7'},
	{name: "bsemi;", cp1: '\U0000204f'},
	{name: "bsim;", cp1: '\U0000223d'},
	{name: "bsime;", cp1: '\U000022cd'},
	{name: "bsol;", cp1: '\\'},
	{name: "bsolb;", cp1: '\U000029c5'},
	{name: "bsolhsub;", cp1: '\U000027c8'},
	{name: "bull;", cp1: '\U00002022'},
	{name: "bullet;", cp1: '\U00002022'},
	{name: "bump;", cp1: '\U0000224e'},
	{name: "bumpE;", cp1: '\U00002aae'},
	{name: "bumpe;", cp1: '\U0000224f'},
	{name: "bumpeq;", cp1: '\U0000224f'},
	{name: "cacute;", cp1: '\U00000107'},
	{name: "cap;", cp1: '\U00002229'},
	{name: "capand;", cp1: '\U00002a44'},
	{name: "capbrcup;", cp1: '\U00002a49'},
	{name: "capcap;", cp1: '\U00002a4b'},
	{name: "capcup;", cp1: '\U00002a47'},
	{name: "capdot;", cp1: '\U00002a40'},
	{name: "caps;", cp1: '\U00002229', cp2: '\U0000fe00', hasCP2: true},
	{name: "caret;", cp1: '\U00002041'},
	{name: "caron;", cp1: '\U000002c7'},
	{name: "ccaps;", cp1: '\U00002a4d'},
	{name: "ccaron;", cp1: '\U0000010d'},
	{name: "ccedil", cp1: '\U000000e7'},
	{name: "ccedil;", cp1: '\U000000e7'},
	{name: "ccirc;", cp1: '\U00000109'},
	{name: "ccups;", cp1: '\U00002a4c'},
	{name: "ccupssm;", cp1: '\U00002a50'},
	{name: "cdot;", cp1: '\U0000010b'},
	{name: "cedil", cp1: '\U000000b8'},
	{name: "cedil;", cp1: '\U000000b8'},
	{name: "cemptyv;", cp1: '\U000029b2'},
	{name: "cent", cp1: '\U000000a2'},
	{name: "cent;", cp1: '\U000000a2'},
	{name: "centerdot;", cp1: '\U000000b7'},
	{name: "cfr;", cp1: '\U0001d520'},
	{name: "chcy;", cp1: '\U00000447'},
	{name: "check;", cp1: '\U00002713'},
	{name: "checkmark;", cp1: '\U00002713'},
	{name: "chi;", cp1: '\U000003c7'},
	{name: "cir;", cp1: '\U000025cb'},
	{name: "cirE;", cp1: '\U000029c3'},
	{name: "circ;", cp1: '\U000002c6'},
	{name: "circeq;", cp1: '\U00002257'},
	{name: "circlearrowleft;", cp1: '\U000021ba'},
	{name: "circlearrowright;", cp1: '\U000021bb'},
	{name: "circledR;", cp1: '\U000000ae'},
	{name: "circledS;", cp1: '\U000024c8'},
	{name: "circledast;", cp1: '\U0000229b'},
	{name: "circledcirc;", cp1: '\U0000229a'},
	{name: "circleddash;", cp1: '\U0000229d'},
	{name: "cire;", cp1: '\U00002257'},
	{name: "cirfnint;", cp1: '\U00002a10'},
	{name: "cirmid;", cp1: '\U00002aef'},
	{name: "cirscir;", cp1: '\U000029c2'},
	{name: "clubs;", cp1: '\U00002663'},
	{name: "clubsuit;", cp1: '\U00002663'},
	{name: "colon;", cp1: ':'},
	{name: "colone;", cp1: '\U00002254'},
	{name: "coloneq;", cp1: '\U00002254'},
	{name: "comma;", cp1: ','},
	{name: "commat;", cp1: '@'},
	{name: "comp;", cp1: '\U00002201'},
	{name: "compfn;", cp1: '\U00002218'},
	{name: "complement;", cp1: '\U00002201'},
	{name: "complexes;", cp1: '\U00002102'},
	{name: "cong;", cp1: '\U00002245'},
	{name: "congdot;", cp1: '\U00002a6d'},
	{name: "conint;", cp1: '\U0000222e'},
	{name: "copf;", cp1: '\U0001d554'},
	{name: "coprod;", cp1: '\U00002210'},
	{name: "copy", cp1: '\U000000a9'},
	{name: "copy;", cp1: '\U000000a9'},
	{name: "copysr;", cp1: '\U00002117'},
	{name: "crarr;", cp1: '\U000021b5'},
	{name: "cross;", cp1: '\U00002717'},
	{name: "cscr;", cp1: '\U0001d4b8'},
	{name: "csub;", cp1: '\U00002acf'},
	{name: "csube;", cp1: '\U00002ad1'},
	{name: "csup;", cp1: '\U00002ad0'},
	{name: "csupe;", cp1: '\U00002ad2'},
	{name: "ctdot;", cp1: '\U000022ef'},
	{name: "cudarrl;", cp1: '\U00002938'},
	{name: "cudarrr;", cp1: '\U00002935'},
	{name: "cuepr;", cp1: '\U000022de'},
	{name: "cuesc;", cp1: '\U000022df'},
	{name: "cularr;", cp1: '\U000021b6'},
	{name: "cularrp;", cp1: '\U0000293d'},
	{name: "cup;", cp1: '\U0000222a'},
	{name: "cupbrcap;", cp1: '\U00002a48'},
	{name: "cupcap;", cp1: '\U00002a46'},
	{name: "cupcup;", cp1: '\U00002a4a'},
	{name: "cupdot;", cp1: '\U0000228d'},
	{name: "cupor;", cp1: '\U00002a45'},
	{name: "cups;", cp1: '\U0000222a', cp2: '\U0000fe00', hasCP2: true},
	{name: "curarr;", cp1: '\U000021b7'},
	{name: "curarrm;", cp1: '\U0000293c'},
	{name: "curlyeqprec;", cp1: '\U000022de'},
	{name: "curlyeqsucc;", cp1: '\U000022df'},
	{name: "curlyvee;", cp1: '\U000022ce'},
	{name: "curlywedge;", cp1: '\U000022cf'},
	{name: "curren", cp1: '\U000000a4'},
	{name: "curren;", cp1: '\U000000a4'},
	{name: "curvearrowleft;", cp1: '\U000021b6'},
	{name: "curvearrowright;", cp1: '\U000021b7'},
	{name: "cuvee;", cp1: '\U000022ce'},
	{name: "cuwed;", cp1: '\U000022cf'},
	{name: "cwconint;", cp1: '\U00002232'},
	{name: "cwint;", cp1: '\U00002231'},
	{name: "cylcty;", cp1: '\U0000232d'},
	{name: "dArr;", cp1: '\U000021d3'},
	{name: "dHar;", cp1: '\U00002965'},
	{name: "dagger;", cp1: '\U00002020'},
	{name: "daleth;", cp1: '\U00002138'},
	{name: "darr;", cp1: '\U00002193'},
	{name: "dash;", cp1: '\U00002010'},
	{name: "dashv;", cp1: '\U000022a3'},
	{name: "dbkarow;", cp1: '\U0000290f'},
	{name: "dblac;", cp1: '\U000002dd'},
	{name: "dcaron;", cp1: '\U0000010f'},
	{name: "dcy;", cp1: '\U00000434'},
	{name: "dd;", cp1: '\U00002146'},
	{name: "ddagger;", cp1: '\U00002021'},
	{name: "ddarr;", cp1: '\U000021ca'},
	{name: "ddotseq;", cp1: '\U00002a77'},
	{name: "deg", cp1: '\U000000b0'},
	{name: "deg;", cp1: '\U000000b0'},
	{name: "delta;", cp1: '\U000003b4'},
	{name: "demptyv;", cp1: '\U000029b1'},
	{name: "dfisht;", cp1: '\U0000297f'},
	{name: "dfr;", cp1: '\U0001d521'},
	{name: "dharl;", cp1: '\U000021c3'},
	{name: "dharr;", cp1: '\U000021c2'},
	{name: "diam;", cp1: '\U000022c4'},
	{name: "diamond;", cp1: '\U000022c4'},
	{name: "diamondsuit;", cp1: '\U00002666'},
	{name: "diams;", cp1: '\U00002666'},
	{name: "die;", cp1: '\U000000a8'},
	{name: "digamma;", cp1: '\U000003dd'},
	{name: "disin;", cp1: '\U000022f2'},
	{name: "div;", cp1: '\U000000f7'},
	{name: "divide", cp1: '\U000000f7'},
	{name: "divide;", cp1: '\U000000f7'},
	{name: "divideontimes;", cp1: '\U000022c7'},
	{name: "divonx;", cp1: '\U000022c7'},
	{name: "djcy;", cp1: '\U00000452'},
	{name: "dlcorn;", cp1: '\U0000231e'},
	{name: "dlcrop;", cp1: '\U0000230d'},
	{name: "dollar;", cp1: '$'},
	{name: "dopf;", cp1: '\U0001d555'},
	{name: "dot;", cp1: '\U000002d9'},
	{name: "doteq;", cp1: '\U00002250'},
	{name: "doteqdot;", cp1: '\U00002251'},
	{name: "dotminus;", cp1: '\U00002238'},
	{name: "dotplus;", cp1: '\U00002214'},
	{name: "dotsquare;", cp1: '\U000022a1'},
	{name: "doublebarwedge;", cp1: '\U00002306'},
	{name: "downarrow;", cp1: '\U00002193'},
	{name: "downdownarrows;", cp1: '\U000021ca'},
	{name: "downharpoonleft;", cp1: '\U000021c3'},
	{name: "downharpoonright;", cp1: '\U000021c2'},
	{name: "drbkarow;", cp1: '\U00002910'},
	{name: "drcorn;", cp1: '\U0000231f'},
	{name: "drcrop;", cp1: '\U0000230c'},
	{name: "dscr;", cp1: '\U0001d4b9'},
	{name: "dscy;", cp1: '\U00000455'},
	{name: "dsol;", cp1: '\U000029f6'},
	{name: "dstrok;", cp1: '\U00000111'},
	{name: "dtdot;", cp1: '\U000022f1'},
	{name: "dtri;", cp1: '\U000025bf'},
	{name: "dtrif;", cp1: '\U000025be'},
	{name: "duarr;", cp1: '\U000021f5'},
	{name: "duhar;", cp1: '\U0000296f'},
	{name: "dwangle;", cp1: '\U000029a6'},
	{name: "dzcy;", cp1: '\U0000045f'},
	{name: "dzigrarr;", cp1: '\U000027ff'},
	{name: "eDDot;", cp1: '\U00002a77'},
	{name: "eDot;", cp1: '\U00002251'},
	{name: "eacute", cp1: '\U000000e9'},
	{name: "eacute;", cp1: '\U000000e9'},
	{name: "easter;", cp1: '\U00002a6e'},
	{name: "ecaron;", cp1: '\U0000011b'},
	{name: "ecir;", cp1: '\U00002256'},
	{name: "ecirc", cp1: '\U000000ea'},
	{name: "ecirc;", cp1: '\U000000ea'},
	{name: "ecolon;", cp1: '\U00002255'},
	{name: "ecy;", cp1: '\U0000044d'},
	{name: "edot;", cp1: '\U00000117'},
	{name: "ee;", cp1: '\U00002147'},
	{name: "efDot;", cp1: '\U00002252'},
	{name: "efr;", cp1: '\U0001d522'},
	{name: "eg;", cp1: '\U00002a9a'},
	{name: "egrave", cp1: '\U000000e8'},
	{name: "egrave;", cp1: '\U000000e8'},
	{name: "egs;", cp1: '\U00002a96'},
	{name: "egsdot;", cp1: '\U00002a98'},
	{name: "el;", cp1: '\U00002a99'},
	{name: "elinters;", cp1: '\U000023e7'},
	{name: "ell;", cp1: '\U00002113'},
	{name: "els;", cp1: '\U00002a95'},
	{name: "elsdot;", cp1: '\U00002a97'},
	{name: "emacr;", cp1: '\U00000113'},
	{name: "empty;", cp1: '\U00002205'},
	{name: "emptyset;", cp1: '\U00002205'},
	{name: "emptyv;", cp1: '\U00002205'},
	{name: "emsp13;", cp1: '\U00002004'},
	{name: "emsp14;", cp1: '\U00002005'},
	{name: "emsp;", cp1: '\U00002003'},
	{name: "eng;", cp1: '\U0000014b'},
	{name: "ensp;", cp1: '\U00002002'},
	{name: "eogon;", cp1: '\U00000119'},
	{name: "eopf;", cp1: '\U0001d556'},
	{name: "epar;", cp1: '\U000022d5'},
	{name: "eparsl;", cp1: '\U000029e3'},
	{name: "eplus;", cp1: '\U00002a71'},
	{name: "epsi;", cp1: '\U000003b5'},
	{name: "epsilon;", cp1: '\U000003b5'},
	{name: "epsiv;", cp1: '\U000003f5'},
	{name: "eqcirc;", cp1: '\U00002256'},
	{name: "eqcolon;", cp1: '\U00002255'},
	{name: "eqsim;", cp1: '\U00002242'},
	{name: "eqslantgtr;", cp1: '\U00002a96'},
	{name: "eqslantless;", cp1: '\U00002a95'},
	{name: "equals;", cp1: '='},
	{name: "equest;", cp1: '\U0000225f'},
	{name: "equiv;", cp1: '\U00002261'},
	{name: "equivDD;", cp1: '\U00002a78'},
	{name: "eqvparsl;", cp1: '\U000029e5'},
	{name: "erDot;", cp1: '\U00002253'},
	{name: "erarr;", cp1: '\U00002971'},
	{name: "escr;", cp1: '\U0000212f'},
	{name: "esdot;", cp1: '\U00002250'},
	{name: "esim;", cp1: '\U00002242'},
	{name: "eta;", cp1: '\U000003b7'},
	{name: "eth", cp1: '\U000000f0'},
	{name: "eth;", cp1: '\U000000f0'},
	{name: "euml", cp1: '\U000000eb'},
	{name: "euml;", cp1: '\U000000eb'},
	{name: "euro;", cp1: '\U000020ac'},
	{name: "excl;", cp1: '!'},
	{name: "exist;", cp1: '\U00002203'},
	{name: "expectation;", cp1: '\U00002130'},
	{name: "exponentiale;", cp1: '\U00002147'},
	{name: "fallingdotseq;", cp1: '\U00002252'},
	{name: "fcy;", cp1: '\U00000444'},
	{name: "female;", cp1: '\U00002640'},
	{name: "ffilig;", cp1: '\U0000fb03'},
	{name: "fflig;", cp1: '\U0000fb00'},
	{name: "ffllig;", cp1: '\U0000fb04'},
	{name: "ffr;", cp1: '\U0001d523'},
	{name: "filig;", cp1: '\U0000fb01'},
	{name: "fjlig;", cp1: 'f', cp2: 'j', hasCP2: true},
	{name: "flat;", cp1: '\U0000266d'},
	{name: "fllig;", cp1: '\U0000fb02'},
	{name: "fltns;", cp1: '\U000025b1'},
	{name: "fnof;", cp1: '\U00000192'},
	{name: "fopf;", cp1: '\U0001d557'},
	{name: "forall;", cp1: '\U00002200'},
	{name: "fork;", cp1: '\U000022d4'},
	{name: "forkv;", cp1: '\U00002ad9'},
	{name: "fpartint;", cp1: '\U00002a0d'},
	{name: "frac12", cp1: '\U000000bd'},
	{name: "frac12;", cp1: '\U000000bd'},
	{name: "frac13;", cp1: '\U00002153'},
	{name: "frac14", cp1: '\U000000bc'},
	{name: "frac14;", cp1: '\U000000bc'},
	{name: "frac15;", cp1: '\U00002155'},
	{name: "frac16;", cp1: '\U00002159'},
	{name: "frac18;", cp1: '\U0000215b'},
	{name: "frac23;", cp1: '\U00002154'},
	{name: "frac25;", cp1: '\U00002156'},
	{name: "frac34", cp1: '\U000000be'},
	{name: "frac34;", cp1: '\U000000be'},
	{name: "frac35;", cp1: '\U00002157'},
	{name: "frac38;", cp1: '\U0000215c'},
	{name: "frac45;", cp1: '\U00002158'},
	{name: "frac56;", cp1: '\U0000215a'},
	{name: "frac58;", cp1: '\U0000215d'},
	{name: "frac78;", cp1: '\U0000215e'},
	{name: "frasl;", cp1: '\U00002044'},
	{name: "frown;", cp1: '\U00002322'},
	{name: "fscr;", cp1: '\U0001d4bb'},
	{name: "gE;", cp1: '\U00002267'},
	{name: "gEl;", cp1: '\U00002a8c'},
	{name: "gacute;", cp1: '\U000001f5'},
	{name: "gamma;", cp1: '\U000003b3'},
	{name: "gammad;", cp1: '\U000003dd'},
	{name: "gap;", cp1: '\U00002a86'},
	{name: "gbreve;", cp1: '\U0000011f'},
	{name: "gcirc;", cp1: '\U0000011d'},
	{name: "gcy;", cp1: '\U00000433'},
	{name: "gdot;", cp1: '\U00000121'},
	{name: "ge;", cp1: '\U00002265'},
	{name: "gel;", cp1: '\U000022db'},
	{name: "geq;", cp1: '\U00002265'},
	{name: "geqq;", cp1: '\U00002267'},
	{name: "geqslant;", cp1: '\U00002a7e'},
	{name: "ges;", cp1: '\U00002a7e'},
	{name: "gescc;", cp1: '\U00002aa9'},
	{name: "gesdot;", cp1: '\U00002a80'},
	{name: "gesdoto;", cp1: '\U00002a82'},
	{name: "gesdotol;", cp1: '\U00002a84'},
	{name: "gesl;", cp1: '\U000022db', cp2: '\U0000fe00', hasCP2: true},
	{name: "gesles;", cp1: '\U00002a94'},
	{name: "gfr;", cp1: '\U0001d524'},
	{name: "gg;", cp1: '\U0000226b'},
	{name: "ggg;", cp1: '\U000022d9'},
	{name: "gimel;", cp1: '\U00002137'},
	{name: "gjcy;", cp1: '\U00000453'},
	{name: "gl;", cp1: '\U00002277'},
	{name: "glE;", cp1: '\U00002a92'},
	{name: "gla;", cp1: '\U00002aa5'},
	{name: "glj;", cp1: '\U00002aa4'},
	{name: "gnE;", cp1: '\U00002269'},
	{name: "gnap;", cp1: '\U00002a8a'},
	{name: "gnapprox;", cp1: '\U00002a8a'},
	{name: "gne;", cp1: '\U00002a88'},
	{name: "gneq;", cp1: '\U00002a88'},
	{name: "gneqq;", cp1: '\U00002269'},
	{name: "gnsim;", cp1: '\U000022e7'},
	{name: "gopf;", cp1: '\U0001d558'},
	{name: "grave;", cp1: '`'},
	{name: "gscr;", cp1: '\U0000210a'},
	{name: "gsim;", cp1: '\U00002273'},
	{name: "gsime;", cp1: '\U00002a8e'},
	{name: "gsiml;", cp1: '\U00002a90'},
	{name: "gt", cp1: '>'},
	{name: "gt;", cp1: '>'},
	{name: "gtcc;", cp1: '\U00002aa7'},
	{name: "gtcir;", cp1: '\U00002a7a'},
	{name: "gtdot;", cp1: '\U000022d7'},
	{name: "gtlPar;", cp1: '\U00002995'},
	{name: "gtquest;", cp1: '\U00002a7c'},
	{name: "gtrapprox;", cp1: '\U00002a86'},
	{name: "gtrarr;", cp1: '\U00002978'},
	{name: "gtrdot;", cp1: '\U000022d7'},
	{name: "gtreqless;", cp1: '\U000022db'},
	{name: "gtreqqless;", cp1: '\U00002a8c'},
	{name: "gtrless;", cp1: '\U00002277'},
	{name: "gtrsim;", cp1: '\U00002273'},
	{name: "gvertneqq;", cp1: '\U00002269', cp2: '\U0000fe00', hasCP2: true},
	{name: "gvnE;", cp1: '\U00002269', cp2: '\U0000fe00', hasCP2: true},
	{name: "hArr;", cp1: '\U000021d4'},
	{name: "hairsp;", cp1: '\U0000200a'},
	{name: "half;", cp1: '\U000000bd'},
	{name: "hamilt;", cp1: '\U0000210b'},
	{name: "hardcy;", cp1: '\U0000044a'},
	{name: "harr;", cp1: '\U00002194'},
	{name: "harrcir;", cp1: '\U00002948'},
	{name: "harrw;", cp1: '\U000021ad'},
	{name: "hbar;", cp1: '\U0000210f'},
	{name: "hcirc;", cp1: '\U00000125'},
	{name: "hearts;", cp1: '\U00002665'},
	{name: "heartsuit;", cp1: '\U00002665'},
	{name: "hellip;", cp1: '\U00002026'},
	{name: "hercon;", cp1: '\U000022b9'},
	{name: "hfr;", cp1: '\U0001d525'},
	{name: "hksearow;", cp1: '\U00002925'},
	{name: "hkswarow;", cp1: '\U00002926'},
	{name: "hoarr;", cp1: '\U000021ff'},
	{name: "homtht;", cp1: '\U0000223b'},
	{name: "hookleftarrow;", cp1: '\U000021a9'},
	{name: "hookrightarrow;", cp1: '\U000021aa'},
	{name: "hopf;", cp1: '\U0001d559'},
	{name: "horbar;", cp1: '\U00002015'},
	{name: "hscr;", cp1: '\U0001d4bd'},
	{name: "hslash;", cp1: '\U0000210f'},
	{name: "hstrok;", cp1: '\U00000127'},
	{name: "hybull;", cp1: '\U00002043'},
	{name: "hyphen;", cp1: '\U00002010'},
	{name: "iacute", cp1: '\U000000ed'},
	{name: "iacute;", cp1: '\U000000ed'},
	{name: "ic;", cp1: '\U00002063'},
	{name: "icirc", cp1: '\U000000ee'},
	{name: "icirc;", cp1: '\U000000ee'},
	{name: "icy;", cp1: '\U00000438'},
	{name: "iecy;", cp1: '\U00000435'},
	{name: "iexcl", cp1: '\U000000a1'},
	{name: "iexcl;", cp1: '\U000000a1'},
	{name: "iff;", cp1: '\U000021d4'},
	{name: "ifr;", cp1: '\U0001d526'},
	{name: "igrave", cp1: '\U000000ec'},
	{name: "igrave;", cp1: '\U000000ec'},
	{name: "ii;", cp1: '\U00002148'},
	{name: "iiiint;", cp1: '\U00002a0c'},
	{name: "iiint;", cp1: '\U0000222d'},
	{name: "iinfin;", cp1: '\U000029dc'},
	{name: "iiota;", cp1: '\U00002129'},
	{name: "ijlig;", cp1: '\U00000133'},
	{name: "imacr;", cp1: '\U0000012b'},
	{name: "image;", cp1: '\U00002111'},
	{name: "imagline;", cp1: '\U00002110'},
	{name: "imagpart;", cp1: '\U00002111'},
	{name: "imath;", cp1: '\U00000131'},
	{name: "imof;", cp1: '\U000022b7'},
	{name: "imped;", cp1: '\U000001b5'},
	{name: "in;", cp1: '\U00002208'},
	{name: "incare;", cp1: '\U00002105'},
	{name: "infin;", cp1: '\U0000221e'},
	{name: "infintie;", cp1: '\U000029dd'},
	{name: "inodot;", cp1: '\U00000131'},
	{name: "int;", cp1: '\U0000222b'},
	{name: "intcal;", cp1: '\U000022ba'},
	{name: "integers;", cp1: '\U00002124'},
	{name: "intercal;", cp1: '\U000022ba'},
	{name: "intlarhk;", cp1: '\U00002a17'},
	{name: "intprod;", cp1: '\U00002a3c'},
	{name: "iocy;", cp1: '\U00000451'},
	{name: "iogon;", cp1: '\U0000012f'},
	{name: "iopf;", cp1: '\U0001d55a'},
	{name: "iota;", cp1: '\U000003b9'},
	{name: "iprod;", cp1: '\U00002a3c'},
	{name: "iquest", cp1: '\U000000bf'},
	{name: "iquest;", cp1: '\U000000bf'},
	{name: "iscr;", cp1: '\U0001d4be'},
	{name: "isin;", cp1: '\U00002208'},
	{name: "isinE;", cp1: '\U000022f9'},
	{name: "isindot;", cp1: '\U000022f5'},
	{name: "isins;", cp1: '\U000022f4'},
	{name: "isinsv;", cp1: '\U000022f3'},
	{name: "isinv;", cp1: '\U00002208'},
	{name: "it;", cp1: '\U00002062'},
	{name: "itilde;", cp1: '\U00000129'},
	{name: "iukcy;", cp1: '\U00000456'},
	{name: "iuml", cp1: '\U000000ef'},
	{name: "iuml;", cp1: '\U000000ef'},
	{name: "jcirc;", cp1: '\U00000135'},
	{name: "jcy;", cp1: '\U00000439'},
	{name: "jfr;", cp1: '\U0001d527'},
	{name: "jmath;", cp1: '\U00000237'},
	{name: "jopf;", cp1: '\U0001d55b'},
	{name: "jscr;", cp1: '\U0001d4bf'},
	{name: "jsercy;", cp1: '\U00000458'},
	{name: "jukcy;", cp1: '\U00000454'},
	{name: "kappa;", cp1: '\U000003ba'},
	{name: "kappav;", cp1: '\U000003f0'},
	{name: "kcedil;", cp1: '\U00000137'},
	{name: "kcy;", cp1: '\U0000043a'},
	{name: "kfr;", cp1: '\U0001d528'},
	{name: "kgreen;", cp1: '\U00000138'},
	{name: "khcy;", cp1: '\U00000445'},
	{name: "kjcy;", cp1: '\U0000045c'},
	{name: "kopf;", cp1: '\U0001d55c'},
	{name: "kscr;", cp1: '\U0001d4c0'},
	{name: "lAarr;", cp1: '\U000021da'},
	{name: "lArr;", cp1: '\U000021d0'},
	{name: "lAtail;", cp1: '\U0000291b'},
	{name: "lBarr;", cp1: '\U0000290e'},
	{name: "lE;", cp1: '\U00002266'},
	{name: "lEg;", cp1: '\U00002a8b'},
	{name: "lHar;", cp1: '\U00002962'},
	{name: "lacute;", cp1: '\U0000013a'},
	{name: "laemptyv;", cp1: '\U000029b4'},
	{name: "lagran;", cp1: '\U00002112'},
	{name: "lambda;", cp1: '\U000003bb'},
	{name: "lang;", cp1: '\U000027e8'},
	{name: "langd;", cp1: '\U00002991'},
	{name: "langle;", cp1: '\U000027e8'},
	{name: "lap;", cp1: '\U00002a85'},
	{name: "laquo", cp1: '\U000000ab'},
	{name: "laquo;", cp1: '\U000000ab'},
	{name: "larr;", cp1: '\U00002190'},
	{name: "larrb;", cp1: '\U000021e4'},
	{name: "larrbfs;", cp1: '\U0000291f'},
	{name: "larrfs;", cp1: '\U0000291d'},
	{name: "larrhk;", cp1: '\U000021a9'},
	{name: "larrlp;", cp1: '\U000021ab'},
	{name: "larrpl;", cp1: '\U00002939'},
	{name: "larrsim;", cp1: '\U00002973'},
	{name: "larrtl;", cp1: '\U000021a2'},
	{name: "lat;", cp1: '\U00002aab'},
	{name: "latail;", cp1: '\U00002919'},
	{name: "late;", cp1: '\U00002aad'},
	{name: "lates;", cp1: '\U00002aad', cp2: '\U0000fe00', hasCP2: true},
	{name: "lbarr;", cp1: '\U0000290c'},
	{name: "lbbrk;", cp1: '\U00002772'},
	{name: "lbrace;", cp1: '{'},
	{name: "lbrack;", cp1: '['},
	{name: "lbrke;", cp1: '\U0000298b'},
	{name: "lbrksld;", cp1: '\U0000298f'},
	{name: "lbrkslu;", cp1: '\U0000298d'},
	{name: "lcaron;", cp1: '\U0000013e'},
	{name: "lcedil;", cp1: '\U0000013c'},
	{name: "lceil;", cp1: '\U00002308'},
	{name: "lcub;", cp1: '{'},
	{name: "lcy;", cp1: '\U0000043b'},
	{name: "ldca;", cp1: '\U00002936'},
	{name: "ldquo;", cp1: '\U0000201c'},
	{name: "ldquor;", cp1: '\U0000201e'},
	{name: "ldrdhar;", cp1: '\U00002967'},
	{name: "ldrushar;", cp1: '\U0000294b'},
	{name: "ldsh;", cp1: '\U000021b2'},
	{name: "le;", cp1: '\U00002264'},
	{name: "leftarrow;", cp1: '\U00002190'},
	{name: "leftarrowtail;", cp1: '\U000021a2'},
	{name: "leftharpoondown;", cp1: '\U000021bd'},
	{name: "leftharpoonup;", cp1: '\U000021bc'},
	{name: "leftleftarrows;", cp1: '\U000021c7'},
	{name: "leftrightarrow;", cp1: '\U00002194'},
	{name: "leftrightarrows;", cp1: '\U000021c6'},
	{name: "leftrightharpoons;", cp1: '\U000021cb'},
	{name: "leftrightsquigarrow;", cp1: '\U000021ad'},
	{name: "leftthreetimes;", cp1: '\U000022cb'},
	{name: "leg;", cp1: '\U000022da'},
	{name: "leq;", cp1: '\U00002264'},
	{name: "leqq;", cp1: '\U00002266'},
	{name: "leqslant;", cp1: '\U00002a7d'},
	{name: "les;", cp1: '\U00002a7d'},
	{name: "lescc;", cp1: '\U00002aa8'},
	{name: "lesdot;", cp1: '\U00002a7f'},
	{name: "lesdoto;", cp1: '\U00002a81'},
	{name: "lesdotor;", cp1: '\U00002a83'},
	{name: "lesg;", cp1: '\U000022da', cp2: '\U0000fe00', hasCP2: true},
	{name: "lesges;", cp1: '\U00002a93'},
	{name: "lessapprox;", cp1: '\U00002a85'},
	{name: "lessdot;", cp1: '\U000022d6'},
	{name: "lesseqgtr;", cp1: '\U000022da'},
	{name: "lesseqqgtr;", cp1: '\U00002a8b'},
	{name: "lessgtr;", cp1: '\U00002276'},
	{name: "lesssim;", cp1: '\U00002272'},
	{name: "lfisht;", cp1: '\U0000297c'},
	{name: "lfloor;", cp1: '\U0000230a'},
	{name: "lfr;", cp1: '\U0001d529'},
	{name: "lg;", cp1: '\U00002276'},
	{name: "lgE;", cp1: '\U00002a91'},
	{name: "lhard;", cp1: '\U000021bd'},
	{name: "lharu;", cp1: '\U000021bc'},
	{name: "lharul;", cp1: '\U0000296a'},
	{name: "lhblk;", cp1: '\U00002584'},
	{name: "ljcy;", cp1: '\U00000459'},
	{name: "ll;", cp1: '\U0000226a'},
	{name: "llarr;", cp1: '\U000021c7'},
	{name: "llcorner;", cp1: '\U0000231e'},
	{name: "llhard;", cp1: '\U0000296b'},
	{name: "lltri;", cp1: '\U000025fa'},
	{name: "lmidot;", cp1: '\U00000140'},
	{name: "lmoust;", cp1: '\U000023b0'},
	{name: "lmoustache;", cp1: '\U000023b0'},
	{name: "lnE;", cp1: '\U00002268'},
	{name: "lnap;", cp1: '\U00002a89'},
	{name: "lnapprox;", cp1: '\U00002a89'},
	{name: "lne;", cp1: '\U00002a87'},
	{name: "lneq;", cp1: '\U00002a87'},
	{name: "lneqq;", cp1: '\U00002268'},
	{name: "lnsim;", cp1: '\U000022e6'},
	{name: "loang;", cp1: '\U000027ec'},
	{name: "loarr;", cp1: '\U000021fd'},
	{name: "lobrk;", cp1: '\U000027e6'},
	{name: "longleftarrow;", cp1: '\U000027f5'},
	{name: "longleftrightarrow;", cp1: '\U000027f7'},
	{name: "longmapsto;", cp1: '\U000027fc'},
	{name: "longrightarrow;", cp1: '\U000027f6'},
	{name: "looparrowleft;", cp1: '\U000021ab'},
	{name: "looparrowright;", cp1: '\U000021ac'},
	{name: "lopar;", cp1: '\U00002985'},
	{name: "lopf;", cp1: '\U0001d55d'},
	{name: "loplus;", cp1: '\U00002a2d'},
	{name: "lotimes;", cp1: '\U00002a34'},
	{name: "lowast;", cp1: '\U00002217'},
	{name: "lowbar;", cp1: '_'},
	{name: "loz;", cp1: '\U000025ca'},
	{name: "lozenge;", cp1: '\U000025ca'},
	{name: "lozf;", cp1: '\U000029eb'},
	{name: "lpar;", cp1: '('},
	{name: "lparlt;", cp1: '\U00002993'},
	{name: "lrarr;", cp1: '\U000021c6'},
	{name: "lrcorner;", cp1: '\U0000231f'},
	{name: "lrhar;", cp1: '\U000021cb'},
	{name: "lrhard;", cp1: '\U0000296d'},
	{name: "lrm;", cp1: '\U0000200e'},
	{name: "lrtri;", cp1: '\U000022bf'},
	{name: "lsaquo;", cp1: '\U00002039'},
	{name: "lscr;", cp1: '\U0001d4c1'},
	{name: "lsh;", cp1: '\U000021b0'},
	{name: "lsim;", cp1: '\U00002272'},
	{name: "lsime;", cp1: '\U00002a8d'},
	{name: "lsimg;", cp1: '\U00002a8f'},
	{name: "lsqb;", cp1: '['},
	{name: "lsquo;", cp1: '\U00002018'},
	{name: "lsquor;", cp1: '\U0000201a'},
	{name: "lstrok;", cp1: '\U00000142'},
	{name: "lt", cp1: '<'},
	{name: "lt;", cp1: '<'},
	{name: "ltcc;", cp1: '\U00002aa6'},
	{name: "ltcir;", cp1: '\U00002a79'},
	{name: "ltdot;", cp1: '\U000022d6'},
	{name: "lthree;", cp1: '\U000022cb'},
	{name: "ltimes;", cp1: '\U000022c9'},
	{name: "ltlarr;", cp1: '\U00002976'},
	{name: "ltquest;", cp1: '\U00002a7b'},
	{name: "ltrPar;", cp1: '\U00002996'},
	{name: "ltri;", cp1: '\U000025c3'},
	{name: "ltrie;", cp1: '\U000022b4'},
	{name: "ltrif;", cp1: '\U000025c2'},
	{name: "lurdshar;", cp1: '\U0000294a'},
	{name: "luruhar;", cp1: '\U00002966'},
	{name: "lvertneqq;", cp1: '\U00002268', cp2: '\U0000fe00', hasCP2: true},
	{name: "lvnE;", cp1: '\U00002268', cp2: '\U0000fe00', hasCP2: true},
	{name: "mDDot;", cp1: '\U0000223a'},
	{name: "macr", cp1: '\U000000af'},
	{name: "macr;", cp1: '\U000000af'},
	{name: "male;", cp1: '\U00002642'},
	{name: "malt;", cp1: '\U00002720'},
	{name: "maltese;", cp1: '\U00002720'},
	{name: "map;", cp1: '\U000021a6'},
	{name: "mapsto;", cp1: '\U000021a6'},
	{name: "mapstodown;", cp1: '\U000021a7'},
	{name: "mapstoleft;", cp1: '\U000021a4'},
	{name: "mapstoup;", cp1: '\U000021a5'},
	{name: "marker;", cp1: '\U000025ae'},
	{name: "mcomma;", cp1: '\U00002a29'},
	{name: "mcy;", cp1: '\U0000043c'},
	{name: "mdash;", cp1: '\U00002014'},
	{name: "measuredangle;", cp1: '\U00002221'},
	{name: "mfr;", cp1: '\U0001d52a'},
	{name: "mho;", cp1: '\U00002127'},
	{name: "micro", cp1: '\U000000b5'},
	{name: "micro;", cp1: '\U000000b5'},
	{name: "mid;", cp1: '\U00002223'},
	{name: "midast;", cp1: '*'},
	{name: "midcir;", cp1: '\U00002af0'},
	{name: "middot", cp1: '\U000000b7'},
	{name: "middot;", cp1: '\U000000b7'},
	{name: "minus;", cp1: '\U00002212'},
	{name: "minusb;", cp1: '\U0000229f'},
	{name: "minusd;", cp1: '\U00002238'},
	{name: "minusdu;", cp1: '\U00002a2a'},
	{name: "mlcp;", cp1: '\U00002adb'},
	{name: "mldr;", cp1: '\U00002026'},
	{name: "mnplus;", cp1: '\U00002213'},
	{name: "models;", cp1: '\U000022a7'},
	{name: "mopf;", cp1: '\U0001d55e'},
	{name: "mp;", cp1: '\U00002213'},
	{name: "mscr;", cp1: '\U0001d4c2'},
	{name: "mstpos;", cp1: '\U0000223e'},
	{name: "mu;", cp1: '\U000003bc'},
	{name: "multimap;", cp1: '\U000022b8'},
	{name: "mumap;", cp1: '\U000022b8'},
	{name: "nGg;", cp1: '\U000022d9', cp2: '\U00000338', hasCP2: true},
	{name: "nGt;", cp1: '\U0000226b', cp2: '\U000020d2', hasCP2: true},
	{name: "nGtv;", cp1: '\U0000226b', cp2: '\U00000338', hasCP2: true},
	{name: "nLeftarrow;", cp1: '\U000021cd'},
	{name: "nLeftrightarrow;", cp1: '\U000021ce'},
	{name: "nLl;", cp1: '\U000022d8', cp2: '\U00000338', hasCP2: true},
	{name: "nLt;", cp1: '\U0000226a', cp2: '\U000020d2', hasCP2: true},
	{name: "nLtv;", cp1: '\U0000226a', cp2: '\U00000338', hasCP2: true},
	{name: "nRightarrow;", cp1: '\U000021cf'},
	{name: "nVDash;", cp1: '\U000022af'},
	{name: "nVdash;", cp1: '\U000022ae'},
	{name: "nabla;", cp1: '\U00002207'},
	{name: "nacute;", cp1: '\U00000144'},
	{name: "nang;", cp1: '\U00002220', cp2: '\U000020d2', hasCP2: true},
	{name: "nap;", cp1: '\U00002249'},
	{name: "napE;", cp1: '\U00002a70', cp2: '\U00000338', hasCP2: true},
	{name: "napid;", cp1: '\U0000224b', cp2: '\U00000338', hasCP2: true},
	{name: "napos;", cp1: '\U00000149'},
	{name: "napprox;", cp1: '\U00002249'},
	{name: "natur;", cp1: '\U0000266e'},
	{name: "natural;", cp1: '\U0000266e'},
	{name: "naturals;", cp1: '\U00002115'},
	{name: "nbsp", cp1: '\U000000a0'},
	{name: "nbsp;", cp1: '\U000000a0'},
	{name: "nbump;", cp1: '\U0000224e', cp2: '\U00000338', hasCP2: true},
	{name: "nbumpe;", cp1: '\U0000224f', cp2: '\U00000338', hasCP2: true},
	{name: "ncap;", cp1: '\U00002a43'},
	{name: "ncaron;", cp1: '\U00000148'},
	{name: "ncedil;", cp1: '\U00000146'},
	{name: "ncong;", cp1: '\U00002247'},
	{name: "ncongdot;", cp1: '\U00002a6d', cp2: '\U00000338', hasCP2: true},
	{name: "ncup;", cp1: '\U00002a42'},
	{name: "ncy;", cp1: '\U0000043d'},
	{name: "ndash;", cp1: '\U00002013'},
	{name: "ne;", cp1: '\U00002260'},
	{name: "neArr;", cp1: '\U000021d7'},
	{name: "nearhk;", cp1: '\U00002924'},
	{name: "nearr;", cp1: '\U00002197'},
	{name: "nearrow;", cp1: '\U00002197'},
	{name: "nedot;", cp1: '\U00002250', cp2: '\U00000338', hasCP2: true},
	{name: "nequiv;", cp1: '\U00002262'},
	{name: "nesear;", cp1: '\U00002928'},
	{name: "nesim;", cp1: '\U00002242', cp2: '\U00000338', hasCP2: true},
	{name: "nexist;", cp1: '\U00002204'},
	{name: "nexists;", cp1: '\U00002204'},
	{name: "nfr;", cp1: '\U0001d52b'},
	{name: "ngE;", cp1: '\U00002267', cp2: '\U00000338', hasCP2: true},
	{name: "nge;", cp1: '\U00002271'},
	{name: "ngeq;", cp1: '\U00002271'},
	{name: "ngeqq;", cp1: '\U00002267', cp2: '\U00000338', hasCP2: true},
	{name: "ngeqslant;", cp1: '\U00002a7e', cp2: '\U00000338', hasCP2: true},
	{name: "nges;", cp1: '\U00002a7e', cp2: '\U00000338', hasCP2: true},
	{name: "ngsim;", cp1: '\U00002275'},
	{name: "ngt;", cp1: '\U0000226f'},
	{name: "ngtr;", cp1: '\U0000226f'},
	{name: "nhArr;", cp1: '\U000021ce'},
	{name: "nharr;", cp1: '\U000021ae'},
	{name: "nhpar;", cp1: '\U00002af2'},
	{name: "ni;", cp1: '\U0000220b'},
	{name: "nis;", cp1: '\U000022fc'},
	{name: "nisd;", cp1: '\U000022fa'},
	{name: "niv;", cp1: '\U0000220b'},
	{name: "njcy;", cp1: '\U0000045a'},
	{name: "nlArr;", cp1: '\U000021cd'},
	{name: "nlE;", cp1: '\U00002266', cp2: '\U00000338', hasCP2: true},
	{name: "nlarr;", cp1: '\U0000219a'},
	{name: "nldr;", cp1: '\U00002025'},
	{name: "nle;", cp1: '\U00002270'},
	{name: "nleftarrow;", cp1: '\U0000219a'},
	{name: "nleftrightarrow;", cp1: '\U000021ae'},
	{name: "nleq;", cp1: '\U00002270'},
	{name: "nleqq;", cp1: '\U00002266', cp2: '\U00000338', hasCP2: true},
	{name: "nleqslant;", cp1: '\U00002a7d', cp2: '\U00000338', hasCP2: true},
	{name: "nles;", cp1: '\U00002a7d', cp2: '\U00000338', hasCP2: true},
	{name: "nless;", cp1: '\U0000226e'},
	{name: "nlsim;", cp1: '\U00002274'},
	{name: "nlt;", cp1: '\U0000226e'},
	{name: "nltri;", cp1: '\U000022ea'},
	{name: "nltrie;", cp1: '\U000022ec'},
	{name: "nmid;", cp1: '\U00002224'},
	{name: "nopf;", cp1: '\U0001d55f'},
	{name: "not", cp1: '\U000000ac'},
	{name: "not;", cp1: '\U000000ac'},
	{name: "notin;", cp1: '\U00002209'},
	{name: "notinE;", cp1: '\U000022f9', cp2: '\U00000338', hasCP2: true},
	{name: "notindot;", cp1: '\U000022f5', cp2: '\U00000338', hasCP2: true},
	{name: "notinva;", cp1: '\U00002209'},
	{name: "notinvb;", cp1: '\U000022f7'},
	{name: "notinvc;", cp1: '\U000022f6'},
	{name: "notni;", cp1: '\U0000220c'},
	{name: "notniva;", cp1: '\U0000220c'},
	{name: "notnivb;", cp1: '\U000022fe'},
	{name: "notnivc;", cp1: '\U000022fd'},
	{name: "npar;", cp1: '\U00002226'},
	{name: "nparallel;", cp1: '\U00002226'},
	{name: "nparsl;", cp1: '\U00002afd', cp2: '\U000020e5', hasCP2: true},
	{name: "npart;", cp1: '\U00002202', cp2: '\U00000338', hasCP2: true},
	{name: "npolint;", cp1: '\U00002a14'},
	{name: "npr;", cp1: '\U00002280'},
	{name: "nprcue;", cp1: '\U000022e0'},
	{name: "npre;", cp1: '\U00002aaf', cp2: '\U00000338', hasCP2: true},
	{name: "nprec;", cp1: '\U00002280'},
	{name: "npreceq;", cp1: '\U00002aaf', cp2: '\U00000338', hasCP2: true},
	{name: "nrArr;", cp1: '\U000021cf'},
	{name: "nrarr;", cp1: '\U0000219b'},
	{name: "nrarrc;", cp1: '\U00002933', cp2: '\U00000338', hasCP2: true},
	{name: "nrarrw;", cp1: '\U0000219d', cp2: '\U00000338', hasCP2: true},
	{name: "nrightarrow;", cp1: '\U0000219b'},
	{name: "nrtri;", cp1: '\U000022eb'},
	{name: "nrtrie;", cp1: '\U000022ed'},
	{name: "nsc;", cp1: '\U00002281'},
	{name: "nsccue;", cp1: '\U000022e1'},
	{name: "nsce;", cp1: '\U00002ab0', cp2: '\U00000338', hasCP2: true},
	{name: "nscr;", cp1: '\U0001d4c3'},
	{name: "nshortmid;", cp1: '\U00002224'},
	{name: "nshortparallel;", cp1: '\U00002226'},
	{name: "nsim;", cp1: '\U00002241'},
	{name: "nsime;", cp1: '\U00002244'},
	{name: "nsimeq;", cp1: '\U00002244'},
	{name: "nsmid;", cp1: '\U00002224'},
	{name: "nspar;", cp1: '\U00002226'},
	{name: "nsqsube;", cp1: '\U000022e2'},
	{name: "nsqsupe;", cp1: '\U000022e3'},
	{name: "nsub;", cp1: '\U00002284'},
	{name: "nsubE;", cp1: '\U00002ac5', cp2: '\U00000338', hasCP2: true},
	{name: "nsube;", cp1: '\U00002288'},
	{name: "nsubset;", cp1: '\U00002282', cp2: '\U000020d2', hasCP2: true},
	{name: "nsubseteq;", cp1: '\U00002288'},
	{name: "nsubseteqq;", cp1: '\U00002ac5', cp2: '\U00000338', hasCP2: true},
	{name: "nsucc;", cp1: '\U00002281'},
	{name: "nsucceq;", cp1: '\U00002ab0', cp2: '\U00000338', hasCP2: true},
	{name: "nsup;", cp1: '\U00002285'},
	{name: "nsupE;", cp1: '\U00002ac6', cp2: '\U00000338', hasCP2: true},
	{name: "nsupe;", cp1: '\U00002289'},
	{name: "nsupset;", cp1: '\U00002283', cp2: '\U000020d2', hasCP2: true},
	{name: "nsupseteq;", cp1: '\U00002289'},
	{name: "nsupseteqq;", cp1: '\U00002ac6', cp2: '\U00000338', hasCP2: true},
	{name: "ntgl;", cp1: '\U00002279'},
	{name: "ntilde", cp1: '\U000000f1'},
	{name: "ntilde;", cp1: '\U000000f1'},
	{name: "ntlg;", cp1: '\U00002278'},
	{name: "ntriangleleft;", cp1: '\U000022ea'},
	{name: "ntrianglelefteq;", cp1: '\U000022ec'},
	{name: "ntriangleright;", cp1: '\U000022eb'},
	{name: "ntrianglerighteq;", cp1: '\U000022ed'},
	{name: "nu;", cp1: '\U000003bd'},
	{name: "num;", cp1: '#'},
	{name: "numero;", cp1: '\U00002116'},
	{name: "numsp;", cp1: '\U00002007'},
	{name: "nvDash;", cp1: '\U000022ad'},
	{name: "nvHarr;", cp1: '\U00002904'},
	{name: "nvap;", cp1: '\U0000224d', cp2: '\U000020d2', hasCP2: true},
	{name: "nvdash;", cp1: '\U000022ac'},
	{name: "nvge;", cp1: '\U00002265', cp2: '\U000020d2', hasCP2: true},
	{name: "nvgt;", cp1: '>', cp2: '\U000020d2', hasCP2: true},
	{name: "nvinfin;", cp1: '\U000029de'},
	{name: "nvlArr;", cp1: '\U00002902'},
	{name: "nvle;", cp1: '\U00002264', cp2: '\U000020d2', hasCP2: true},
	{name: "nvlt;", cp1: '<', cp2: '\U000020d2', hasCP2: true},
	{name: "nvltrie;", cp1: '\U000022b4', cp2: '\U000020d2', hasCP2: true},
	{name: "nvrArr;", cp1: '\U00002903'},
	{name: "nvrtrie;", cp1: '\U000022b5', cp2: '\U000020d2', hasCP2: true},
	{name: "nvsim;", cp1: '\U0000223c', cp2: '\U000020d2', hasCP2: true},
	{name: "nwArr;", cp1: '\U000021d6'},
	{name: "nwarhk;", cp1: '\U00002923'},
	{name: "nwarr;", cp1: '\U00002196'},
	{name: "nwarrow;", cp1: '\U00002196'},
	{name: "nwnear;", cp1: '\U00002927'},
	{name: "oS;", cp1: '\U000024c8'},
	{name: "oacute", cp1: '\U000000f3'},
	{name: "oacute;", cp1: '\U000000f3'},
	{name: "oast;", cp1: '\U0000229b'},
	{name: "ocir;", cp1: '\U0000229a'},
	{name: "ocirc", cp1: '\U000000f4'},
	{name: "ocirc;", cp1: '\U000000f4'},
	{name: "ocy;", cp1: '\U0000043e'},
	{name: "odash;", cp1: '\U0000229d'},
	{name: "odblac;", cp1: '\U00000151'},
	{name: "odiv;", cp1: '\U00002a38'},
	{name: "odot;", cp1: '\U00002299'},
	{name: "odsold;", cp1: '\U000029bc'},
	{name: "oelig;", cp1: '\U00000153'},
	{name: "ofcir;", cp1: '\U000029bf'},
	{name: "ofr;", cp1: '\U0001d52c'},
	{name: "ogon;", cp1: '\U000002db'},
	{name: "ograve", cp1: '\U000000f2'},
	{name: "ograve;", cp1: '\U000000f2'},
	{name: "ogt;", cp1: '\U000029c1'},
	{name: "ohbar;", cp1: '\U000029b5'},
	{name: "ohm;", cp1: '\U000003a9'},
	{name: "oint;", cp1: '\U0000222e'},
	{name: "olarr;", cp1: '\U000021ba'},
	{name: "olcir;", cp1: '\U000029be'},
	{name: "olcross;", cp1: '\U000029bb'},
	{name: "oline;", cp1: '\U0000203e'},
	{name: "olt;", cp1: '\U000029c0'},
	{name: "omacr;", cp1: '\U0000014d'},
	{name: "omega;", cp1: '\U000003c9'},
	{name: "omicron;", cp1: '\U000003bf'},
	{name: "omid;", cp1: '\U000029b6'},
	{name: "ominus;", cp1: '\U00002296'},
	{name: "oopf;", cp1: '\U0001d560'},
	{name: "opar;", cp1: '\U000029b7'},
	{name: "operp;", cp1: '\U000029b9'},
	{name: "oplus;", cp1: '\U00002295'},
	{name: "or;", cp1: '\U00002228'},
	{name: "orarr;", cp1: '\U000021bb'},
	{name: "ord;", cp1: '\U00002a5d'},
	{name: "order;", cp1: '\U00002134'},
	{name: "orderof;", cp1: '\U00002134'},
	{name: "ordf", cp1: '\U000000aa'},
	{name: "ordf;", cp1: '\U000000aa'},
	{name: "ordm", cp1: '\U000000ba'},
	{name: "ordm;", cp1: '\U000000ba'},
	{name: "origof;", cp1: '\U000022b6'},
	{name: "oror;", cp1: '\U00002a56'},
	{name: "orslope;", cp1: '\U00002a57'},
	{name: "orv;", cp1: '\U00002a5b'},
	{name: "oscr;", cp1: '\U00002134'},
	{name: "oslash", cp1: '\U000000f8'},
	{name: "oslash;", cp1: '\U000000f8'},
	{name: "osol;", cp1: '\U00002298'},
	{name: "otilde", cp1: '\U000000f5'},
	{name: "otilde;", cp1: '\U000000f5'},
	{name: "otimes;", cp1: '\U00002297'},
	{name: "otimesas;", cp1: '\U00002a36'},
	{name: "ouml", cp1: '\U000000f6'},
	{name: "ouml;", cp1: '\U000000f6'},
	{name: "ovbar;", cp1: '\U0000233d'},
	{name: "par;", cp1: '\U00002225'},
	{name: "para", cp1: '\U000000b6'},
	{name: "para;", cp1: '\U000000b6'},
	{name: "parallel;", cp1: '\U00002225'},
	{name: "parsim;", cp1: '\U00002af3'},
	{name: "parsl;", cp1: '\U00002afd'},
	{name: "part;", cp1: '\U00002202'},
	{name: "pcy;", cp1: '\U0000043f'},
	{name: "percnt;", cp1: '%'},
	{name: "period;", cp1: '.'},
	{name: "permil;", cp1: '\U00002030'},
	{name: "perp;", cp1: '\U000022a5'},
	{name: "pertenk;", cp1: '\U00002031'},
	{name: "pfr;", cp1: '\U0001d52d'},
	{name: "phi;", cp1: '\U000003c6'},
	{name: "phiv;", cp1: '\U000003d5'},
	{name: "phmmat;", cp1: '\U00002133'},
	{name: "phone;", cp1: '\U0000260e'},
	{name: "pi;", cp1: '\U000003c0'},
	{name: "pitchfork;", cp1: '\U000022d4'},
	{name: "piv;", cp1: '\U000003d6'},
	{name: "planck;", cp1: '\U0000210f'},
	{name: "planckh;", cp1: '\U0000210e'},
	{name: "plankv;", cp1: '\U0000210f'},
	{name: "plus;", cp1: '+'},
	{name: "plusacir;", cp1: '\U00002a23'},
	{name: "plusb;", cp1: '\U0000229e'},
	{name: "pluscir;", cp1: '\U00002a22'},
	{name: "plusdo;", cp1: '\U00002214'},
	{name: "plusdu;", cp1: '\U00002a25'},
	{name: "pluse;", cp1: '\U00002a72'},
	{name: "plusmn", cp1: '\U000000b1'},
	{name: "plusmn;", cp1: '\U000000b1'},
	{name: "plussim;", cp1: '\U00002a26'},
	{name: "plustwo;", cp1: '\U00002a27'},
	{name: "pm;", cp1: '\U000000b1'},
	{name: "pointint;", cp1: '\U00002a15'},
	{name: "popf;", cp1: '\U0001d561'},
	{name: "pound", cp1: '\U000000a3'},
	{name: "pound;", cp1: '\U000000a3'},
	{name: "pr;", cp1: '\U0000227a'},
	{name: "prE;", cp1: '\U00002ab3'},
	{name: "prap;", cp1: '\U00002ab7'},
	{name: "prcue;", cp1: '\U0000227c'},
	{name: "pre;", cp1: '\U00002aaf'},
	{name: "prec;", cp1: '\U0000227a'},
	{name: "precapprox;", cp1: '\U00002ab7'},
	{name: "preccurlyeq;", cp1: '\U0000227c'},
	{name: "preceq;", cp1: '\U00002aaf'},
	{name: "precnapprox;", cp1: '\U00002ab9'},
	{name: "precneqq;", cp1: '\U00002ab5'},
	{name: "precnsim;", cp1: '\U000022e8'},
	{name: "precsim;", cp1: '\U0000227e'},
	{name: "prime;", cp1: '\U00002032'},
	{name: "primes;", cp1: '\U00002119'},
	{name: "prnE;", cp1: '\U00002ab5'},
	{name: "prnap;", cp1: '\U00002ab9'},
	{name: "prnsim;", cp1: '\U000022e8'},
	{name: "prod;", cp1: '\U0000220f'},
	{name: "profalar;", cp1: '\U0000232e'},
	{name: "profline;", cp1: '\U00002312'},
	{name: "profsurf;", cp1: '\U00002313'},
	{name: "prop;", cp1: '\U0000221d'},
	{name: "propto;", cp1: '\U0000221d'},
	{name: "prsim;", cp1: '\U0000227e'},
	{name: "prurel;", cp1: '\U000022b0'},
	{name: "pscr;", cp1: '\U0001d4c5'},
	{name: "psi;", cp1: '\U000003c8'},
	{name: "puncsp;", cp1: '\U00002008'},
	{name: "qfr;", cp1: '\U0001d52e'},
	{name: "qint;", cp1: '\U00002a0c'},
	{name: "qopf;", cp1: '\U0001d562'},
	{name: "qprime;", cp1: '\U00002057'},
	{name: "qscr;", cp1: '\U0001d4c6'},
	{name: "quaternions;", cp1: '\U0000210d'},
	{name: "quatint;", cp1: '\U00002a16'},
	{name: "quest;", cp1: '?'},
	{name: "questeq;", cp1: '\U0000225f'},
	{name: "quot", cp1: '"'},
	{name: "quot;", cp1: '"'},
	{name: "rAarr;", cp1: '\U000021db'},
	{name: "rArr;", cp1: '\U000021d2'},
	{name: "rAtail;", cp1: '\U0000291c'},
	{name: "rBarr;", cp1: '\U0000290f'},
	{name: "rHar;", cp1: '\U00002964'},
	{name: "race;", cp1: '\U0000223d', cp2: '\U00000331', hasCP2: true},
	{name: "racute;", cp1: '\U00000155'},
	{name: "radic;", cp1: '\U0000221a'},
	{name: "raemptyv;", cp1: '\U000029b3'},
	{name: "rang;", cp1: '\U000027e9'},
	{name: "rangd;", cp1: '\U00002992'},
	{name: "range;", cp1: '\U000029a5'},
	{name: "rangle;", cp1: '\U000027e9'},
	{name: "raquo", cp1: '\U000000bb'},
	{name: "raquo;", cp1: '\U000000bb'},
	{name: "rarr;", cp1: '\U00002192'},
	{name: "rarrap;", cp1: '\U00002975'},
	{name: "rarrb;", cp1: '\U000021e5'},
	{name: "rarrbfs;", cp1: '\U00002920'},
	{name: "rarrc;", cp1: '\U00002933'},
	{name: "rarrfs;", cp1: '\U0000291e'},
	{name: "rarrhk;", cp1: '\U000021aa'},
	{name: "rarrlp;", cp1: '\U000021ac'},
	{name: "rarrpl;", cp1: '\U00002945'},
	{name: "rarrsim;", cp1: '\U00002974'},
	{name: "rarrtl;", cp1: '\U000021a3'},
	{name: "rarrw;", cp1: '\U0000219d'},
	{name: "ratail;", cp1: '\U0000291a'},
	{name: "ratio;", cp1: '\U00002236'},
	{name: "rationals;", cp1: '\U0000211a'},
	{name: "rbarr;", cp1: '\U0000290d'},
	{name: "rbbrk;", cp1: '\U00002773'},
	{name: "rbrace;", cp1: '}'},
	{name: "rbrack;", cp1: ']'},
	{name: "rbrke;", cp1: '\U0000298c'},
	{name: "rbrksld;", cp1: '\U0000298e'},
	{name: "rbrkslu;", cp1: '\U00002990'},
	{name: "rcaron;", cp1: '\U00000159'},
	{name: "rcedil;", cp1: '\U00000157'},
	{name: "rceil;", cp1: '\U00002309'},
	{name: "rcub;", cp1: '}'},
	{name: "rcy;", cp1: '\U00000440'},
	{name: "rdca;", cp1: '\U00002937'},
	{name: "rdldhar;", cp1: '\U00002969'},
	{name: "rdquo;", cp1: '\U0000201d'},
	{name: "rdquor;", cp1: '\U0000201d'},
	{name: "rdsh;", cp1: '\U000021b3'},
	{name: "real;", cp1: '\U0000211c'},
	{name: "realine;", cp1: '\U0000211b'},
	{name: "realpart;", cp1: '\U0000211c'},
	{name: "reals;", cp1: '\U0000211d'},
	{name: "rect;", cp1: '\U000025ad'},
	{name: "reg", cp1: '\U000000ae'},
	{name: "reg;", cp1: '\U000000ae'},
	{name: "rfisht;", cp1: '\U0000297d'},
	{name: "rfloor;", cp1: '\U0000230b'},
	{name: "rfr;", cp1: '\U0001d52f'},
	{name: "rhard;", cp1: '\U000021c1'},
	{name: "rharu;", cp1: '\U000021c0'},
	{name: "rharul;", cp1: '\U0000296c'},
	{name: "rho;", cp1: '\U000003c1'},
	{name: "rhov;", cp1: '\U000003f1'},
	{name: "rightarrow;", cp1: '\U00002192'},
	{name: "rightarrowtail;", cp1: '\U000021a3'},
	{name: "rightharpoondown;", cp1: '\U000021c1'},
	{name: "rightharpoonup;", cp1: '\U000021c0'},
	{name: "rightleftarrows;", cp1: '\U000021c4'},
	{name: "rightleftharpoons;", cp1: '\U000021cc'},
	{name: "rightrightarrows;", cp1: '\U000021c9'},
	{name: "rightsquigarrow;", cp1: '\U0000219d'},
	{name: "rightthreetimes;", cp1: '\U000022cc'},
	{name: "ring;", cp1: '\U000002da'},
	{name: "risingdotseq;", cp1: '\U00002253'},
	{name: "rlarr;", cp1: '\U000021c4'},
	{name: "rlhar;", cp1: '\U000021cc'},
	{name: "rlm;", cp1: '\U0000200f'},
	{name: "rmoust;", cp1: '\U000023b1'},
	{name: "rmoustache;", cp1: '\U000023b1'},
	{name: "rnmid;", cp1: '\U00002aee'},
	{name: "roang;", cp1: '\U000027ed'},
	{name: "roarr;", cp1: '\U000021fe'},
	{name: "robrk;", cp1: '\U000027e7'},
	{name: "ropar;", cp1: '\U00002986'},
	{name: "ropf;", cp1: '\U0001d563'},
	{name: "roplus;", cp1: '\U00002a2e'},
	{name: "rotimes;", cp1: '\U00002a35'},
	{name: "rpar;", cp1: ')'},
	{name: "rpargt;", cp1: '\U00002994'},
	{name: "rppolint;", cp1: '\U00002a12'},
	{name: "rrarr;", cp1: '\U000021c9'},
	{name: "rsaquo;", cp1: '\U0000203a'},
	{name: "rscr;", cp1: '\U0001d4c7'},
	{name: "rsh;", cp1: '\U000021b1'},
	{name: "rsqb;", cp1: ']'},
	{name: "rsquo;", cp1: '\U00002019'},
	{name: "rsquor;", cp1: '\U00002019'},
	{name: "rthree;", cp1: '\U000022cc'},
	{name: "rtimes;", cp1: '\U000022ca'},
	{name: "rtri;", cp1: '\U000025b9'},
	{name: "rtrie;", cp1: '\U000022b5'},
	{name: "rtrif;", cp1: '\U000025b8'},
	{name: "rtriltri;", cp1: '\U000029ce'},
	{name: "ruluhar;", cp1: '\U00002968'},
	{name: "rx;", cp1: '\U0000211e'},
	{name: "sacute;", cp1: '\U0000015b'},
	{name: "sbquo;", cp1: '\U0000201a'},
	{name: "sc;", cp1: '\U0000227b'},
	{name: "scE;", cp1: '\U00002ab4'},
	{name: "scap;", cp1: '\U00002ab8'},
	{name: "scaron;", cp1: '\U00000161'},
	{name: "sccue;", cp1: '\U0000227d'},
	{name: "sce;", cp1: '\U00002ab0'},
	{name: "scedil;", cp1: '\U0000015f'},
	{name: "scirc;", cp1: '\U0000015d'},
	{name: "scnE;", cp1: '\U00002ab6'},
	{name: "scnap;", cp1: '\U00002aba'},
	{name: "scnsim;", cp1: '\U000022e9'},
	{name: "scpolint;", cp1: '\U00002a13'},
	{name: "scsim;", cp1: '\U0000227f'},
	{name: "scy;", cp1: '\U00000441'},
	{name: "sdot;", cp1: '\U000022c5'},
	{name: "sdotb;", cp1: '\U000022a1'},
	{name: "sdote;", cp1: '\U00002a66'},
	{name: "seArr;", cp1: '\U000021d8'},
	{name: "searhk;", cp1: '\U00002925'},
	{name: "searr;", cp1: '\U00002198'},
	{name: "searrow;", cp1: '\U00002198'},
	{name: "sect", cp1: '\U000000a7'},
	{name: "sect;", cp1: '\U000000a7'},
	{name: "semi;", cp1: ';'},
	{name: "seswar;", cp1: '\U00002929'},
	{name: "setminus;", cp1: '\U00002216'},
	{name: "setmn;", cp1: '\U00002216'},
	{name: "sext;", cp1: '\U00002736'},
	{name: "sfr;", cp1: '\U0001d530'},
	{name: "sfrown;", cp1: '\U00002322'},
	{name: "sharp;", cp1: '\U0000266f'},
	{name: "shchcy;", cp1: '\U00000449'},
	{name: "shcy;", cp1: '\U00000448'},
	{name: "shortmid;", cp1: '\U00002223'},
	{name: "shortparallel;", cp1: '\U00002225'},
	{name: "shy", cp1: '\U000000ad'},
	{name: "shy;", cp1: '\U000000ad'},
	{name: "sigma;", cp1: '\U000003c3'},
	{name: "sigmaf;", cp1: '\U000003c2'},
	{name: "sigmav;", cp1: '\U000003c2'},
	{name: "sim;", cp1: '\U0000223c'},
	{name: "simdot;", cp1: '\U00002a6a'},
	{name: "sime;", cp1: '\U00002243'},
	{name: "simeq;", cp1: '\U00002243'},
	{name: "simg;", cp1: '\U00002a9e'},
	{name: "simgE;", cp1: '\U00002aa0'},
	{name: "siml;", cp1: '\U00002a9d'},
	{name: "simlE;", cp1: '\U00002a9f'},
	{name: "simne;", cp1: '\U00002246'},
	{name: "simplus;", cp1: '\U00002a24'},
	{name: "simrarr;", cp1: '\U00002972'},
	{name: "slarr;", cp1: '\U00002190'},
	{name: "smallsetminus;", cp1: '\U00002216'},
	{name: "smashp;", cp1: '\U00002a33'},
	{name: "smeparsl;", cp1: '\U000029e4'},
	{name: "smid;", cp1: '\U00002223'},
	{name: "smile;", cp1: '\U00002323'},
	{name: "smt;", cp1: '\U00002aaa'},
	{name: "smte;", cp1: '\U00002aac'},
	{name: "smtes;", cp1: '\U00002aac', cp2: '\U0000fe00', hasCP2: true},
	{name: "softcy;", cp1: '\U0000044c'},
	{name: "sol;", cp1: '/'},
	{name: "solb;", cp1: '\U000029c4'},
	{name: "solbar;", cp1: '\U0000233f'},
	{name: "sopf;", cp1: '\U0001d564'},
	{name: "spades;", cp1: '\U00002660'},
	{name: "spadesuit;", cp1: '\U00002660'},
	{name: "spar;", cp1: '\U00002225'},
	{name: "sqcap;", cp1: '\U00002293'},
	{name: "sqcaps;", cp1: '\U00002293', cp2: '\U0000fe00', hasCP2: true},
	{name: "sqcup;", cp1: '\U00002294'},
	{name: "sqcups;", cp1: '\U00002294', cp2: '\U0000fe00', hasCP2: true},
	{name: "sqsub;", cp1: '\U0000228f'},
	{name: "sqsube;", cp1: '\U00002291'},
	{name: "sqsubset;", cp1: '\U0000228f'},
	{name: "sqsubseteq;", cp1: '\U00002291'},
	{name: "sqsup;", cp1: '\U00002290'},
	{name: "sqsupe;", cp1: '\U00002292'},
	{name: "sqsupset;", cp1: '\U00002290'},
	{name: "sqsupseteq;", cp1: '\U00002292'},
	{name: "squ;", cp1: '\U000025a1'},
	{name: "square;", cp1: '\U000025a1'},
	{name: "squarf;", cp1: '\U000025aa'},
	{name: "squf;", cp1: '\U000025aa'},
	{name: "srarr;", cp1: '\U00002192'},
	{name: "sscr;", cp1: '\U0001d4c8'},
	{name: "ssetmn;", cp1: '\U00002216'},
	{name: "ssmile;", cp1: '\U00002323'},
	{name: "sstarf;", cp1: '\U000022c6'},
	{name: "star;", cp1: '\U00002606'},
	{name: "starf;", cp1: '\U00002605'},
	{name: "straightepsilon;", cp1: '\U000003f5'},
	{name: "straightphi;", cp1: '\U000003d5'},
	{name: "strns;", cp1: '\U000000af'},
	{name: "sub;", cp1: '\U00002282'},
	{name: "subE;", cp1: '\U00002ac5'},
	{name: "subdot;", cp1: '\U00002abd'},
	{name: "sube;", cp1: '\U00002286'},
	{name: "subedot;", cp1: '\U00002ac3'},
	{name: "submult;", cp1: '\U00002ac1'},
	{name: "subnE;", cp1: '\U00002acb'},
	{name: "subne;", cp1: '\U0000228a'},
	{name: "subplus;", cp1: '\U00002abf'},
	{name: "subrarr;", cp1: '\U00002979'},
	{name: "subset;", cp1: '\U00002282'},
	{name: "subseteq;", cp1: '\U00002286'},
	{name: "subseteqq;", cp1: '\U00002ac5'},
	{name: "subsetneq;", cp1: '\U0000228a'},
	{name: "subsetneqq;", cp1: '\U00002acb'},
	{name: "subsim;", cp1: '\U00002ac7'},
	{name: "subsub;", cp1: '\U00002ad5'},
	{name: "subsup;", cp1: '\U00002ad3'},
	{name: "succ;", cp1: '\U0000227b'},
	{name: "succapprox;", cp1: '\U00002ab8'},
	{name: "succcurlyeq;", cp1: '\U0000227d'},
	{name: "succeq;", cp1: '\U00002ab0'},
	{name: "succnapprox;", cp1: '\U00002aba'},
	{name: "succneqq;", cp1: '\U00002ab6'},
	{name: "succnsim;", cp1: '\U000022e9'},
	{name: "succsim;", cp1: '\U0000227f'},
	{name: "sum;", cp1: '\U00002211'},
	{name: "sung;", cp1: '\U0000266a'},
	{name: "sup1", cp1: '\U000000b9'},
	{name: "sup1;", cp1: '\U000000b9'},
	{name: "sup2", cp1: '\U000000b2'},
	{name: "sup2;", cp1: '\U000000b2'},
	{name: "sup3", cp1: '\U000000b3'},
	{name: "sup3;", cp1: '\U000000b3'},
	{name: "sup;", cp1: '\U00002283'},
	{name: "supE;", cp1: '\U00002ac6'},
	{name: "supdot;", cp1: '\U00002abe'},
	{name: "supdsub;", cp1: '\U00002ad8'},
	{name: "supe;", cp1: '\U00002287'},
	{name: "supedot;", cp1: '\U00002ac4'},
	{name: "suphsol;", cp1: '\U000027c9'},
	{name: "suphsub;", cp1: '\U00002ad7'},
	{name: "suplarr;", cp1: '\U0000297b'},
	{name: "supmult;", cp1: '\U00002ac2'},
	{name: "supnE;", cp1: '\U00002acc'},
	{name: "supne;", cp1: '\U0000228b'},
	{name: "supplus;", cp1: '\U00002ac0'},
	{name: "supset;", cp1: '\U00002283'},
	{name: "supseteq;", cp1: '\U00002287'},
	{name: "supseteqq;", cp1: '\U00002ac6'},
	{name: "supsetneq;", cp1: '\U0000228b'},
	{name: "supsetneqq;", cp1: '\U00002acc'},
	{name: "supsim;", cp1: '\U00002ac8'},
	{name: "supsub;", cp1: '\U00002ad4'},
	{name: "supsup;", cp1: '\U00002ad6'},
	{name: "swArr;", cp1: '\U000021d9'},
	{name: "swarhk;", cp1: '\U00002926'},
	{name: "swarr;", cp1: '\U00002199'},
	{name: "swarrow;", cp1: '\U00002199'},
	{name: "swnwar;", cp1: '\U0000292a'},
	{name: "szlig", cp1: '\U000000df'},
	{name: "szlig;", cp1: '\U000000df'},
	{name: "target;", cp1: '\U00002316'},
	{name: "tau;", cp1: '\U000003c4'},
	{name: "tbrk;", cp1: '\U000023b4'},
	{name: "tcaron;", cp1: '\U00000165'},
	{name: "tcedil;", cp1: '\U00000163'},
	{name: "tcy;", cp1: '\U00000442'},
	{name: "tdot;", cp1: '\U000020db'},
	{name: "telrec;", cp1: '\U00002315'},
	{name: "tfr;", cp1: '\U0001d531'},
	{name: "there4;", cp1: '\U00002234'},
	{name: "therefore;", cp1: '\U00002234'},
	{name: "theta;", cp1: '\U000003b8'},
	{name: "thetasym;", cp1: '\U000003d1'},
	{name: "thetav;", cp1: '\U000003d1'},
	{name: "thickapprox;", cp1: '\U00002248'},
	{name: "thicksim;", cp1: '\U0000223c'},
	{name: "thinsp;", cp1: '\U00002009'},
	{name: "thkap;", cp1: '\U00002248'},
	{name: "thksim;", cp1: '\U0000223c'},
	{name: "thorn", cp1: '\U000000fe'},
	{name: "thorn;", cp1: '\U000000fe'},
	{name: "tilde;", cp1: '\U000002dc'},
	{name: "times", cp1: '\U000000d7'},
	{name: "times;", cp1: '\U000000d7'},
	{name: "timesb;", cp1: '\U000022a0'},
	{name: "timesbar;", cp1: '\U00002a31'},
	{name: "timesd;", cp1: '\U00002a30'},
	{name: "tint;", cp1: '\U0000222d'},
	{name: "toea;", cp1: '\U00002928'},
	{name: "top;", cp1: '\U000022a4'},
	{name: "topbot;", cp1: '\U00002336'},
	{name: "topcir;", cp1: '\U00002af1'},
	{name: "topf;", cp1: '\U0001d565'},
	{name: "topfork;", cp1: '\U00002ada'},
	{name: "tosa;", cp1: '\U00002929'},
	{name: "tprime;", cp1: '\U00002034'},
	{name: "trade;", cp1: '\U00002122'},
	{name: "triangle;", cp1: '\U000025b5'},
	{name: "triangledown;", cp1: '\U000025bf'},
	{name: "triangleleft;", cp1: '\U000025c3'},
	{name: "trianglelefteq;", cp1: '\U000022b4'},
	{name: "triangleq;", cp1: '\U0000225c'},
	{name: "triangleright;", cp1: '\U000025b9'},
	{name: "trianglerighteq;", cp1: '\U000022b5'},
	{name: "tridot;", cp1: '\U000025ec'},
	{name: "trie;", cp1: '\U0000225c'},
	{name: "triminus;", cp1: '\U00002a3a'},
	{name: "triplus;", cp1: '\U00002a39'},
	{name: "trisb;", cp1: '\U000029cd'},
	{name: "tritime;", cp1: '\U00002a3b'},
	{name: "trpezium;", cp1: '\U000023e2'},
	{name: "tscr;", cp1: '\U0001d4c9'},
	{name: "tscy;", cp1: '\U00000446'},
	{name: "tshcy;", cp1: '\U0000045b'},
	{name: "tstrok;", cp1: '\U00000167'},
	{name: "twixt;", cp1: '\U0000226c'},
	{name: "twoheadleftarrow;", cp1: '\U0000219e'},
	{name: "twoheadrightarrow;", cp1: '\U000021a0'},
	{name: "uArr;", cp1: '\U000021d1'},
	{name: "uHar;", cp1: '\U00002963'},
	{name: "uacute", cp1: '\U000000fa'},
	{name: "uacute;", cp1: '\U000000fa'},
	{name: "uarr;", cp1: '\U00002191'},
	{name: "ubrcy;", cp1: '\U0000045e'},
	{name: "ubreve;", cp1: '\U0000016d'},
	{name: "ucirc", cp1: '\U000000fb'},
	{name: "ucirc;", cp1: '\U000000fb'},
	{name: "ucy;", cp1: '\U00000443'},
	{name: "udarr;", cp1: '\U000021c5'},
	{name: "udblac;", cp1: '\U00000171'},
	{name: "udhar;", cp1: '\U0000296e'},
	{name: "ufisht;", cp1: '\U0000297e'},
	{name: "ufr;", cp1: '\U0001d532'},
	{name: "ugrave", cp1: '\U000000f9'},
	{name: "ugrave;", cp1: '\U000000f9'},
	{name: "uharl;", cp1: '\U000021bf'},
	{name: "uharr;", cp1: '\U000021be'},
	{name: "uhblk;", cp1: '\U00002580'},
	{name: "ulcorn;", cp1: '\U0000231c'},
	{name: "ulcorner;", cp1: '\U0000231c'},
	{name: "ulcrop;", cp1: '\U0000230f'},
	{name: "ultri;", cp1: '\U000025f8'},
	{name: "umacr;", cp1: '\U0000016b'},
	{name: "uml", cp1: '\U000000a8'},
	{name: "uml;", cp1: '\U000000a8'},
	{name: "uogon;", cp1: '\U00000173'},
	{name: "uopf;", cp1: '\U0001d566'},
	{name: "uparrow;", cp1: '\U00002191'},
	{name: "updownarrow;", cp1: '\U00002195'},
	{name: "upharpoonleft;", cp1: '\U000021bf'},
	{name: "upharpoonright;", cp1: '\U000021be'},
	{name: "uplus;", cp1: '\U0000228e'},
	{name: "upsi;", cp1: '\U000003c5'},
	{name: "upsih;", cp1: '\U000003d2'},
	{name: "upsilon;", cp1: '\U000003c5'},
	{name: "upuparrows;", cp1: '\U000021c8'},
	{name: "urcorn;", cp1: '\U0000231d'},
	{name: "urcorner;", cp1: '\U0000231d'},
	{name: "urcrop;", cp1: '\U0000230e'},
	{name: "uring;", cp1: '\U0000016f'},
	{name: "urtri;", cp1: '\U000025f9'},
	{name: "uscr;", cp1: '\U0001d4ca'},
	{name: "utdot;", cp1: '\U000022f0'},
	{name: "utilde;", cp1: '\U00000169'},
	{name: "utri;", cp1: '\U000025b5'},
	{name: "utrif;", cp1: '\U000025b4'},
	{name: "uuarr;", cp1: '\U000021c8'},
	{name: "uuml", cp1: '\U000000fc'},
	{name: "uuml;", cp1: '\U000000fc'},
	{name: "uwangle;", cp1: '\U000029a7'},
	{name: "vArr;", cp1: '\U000021d5'},
	{name: "vBar;", cp1: '\U00002ae8'},
	{name: "vBarv;", cp1: '\U00002ae9'},
	{name: "vDash;", cp1: '\U000022a8'},
	{name: "vangrt;", cp1: '\U0000299c'},
	{name: "varepsilon;", cp1: '\U000003f5'},
	{name: "varkappa;", cp1: '\U000003f0'},
	{name: "varnothing;", cp1: '\U00002205'},
	{name: "varphi;", cp1: '\U000003d5'},
	{name: "varpi;", cp1: '\U000003d6'},
	{name: "varpropto;", cp1: '\U0000221d'},
	{name: "varr;", cp1: '\U00002195'},
	{name: "varrho;", cp1: '\U000003f1'},
	{name: "varsigma;", cp1: '\U000003c2'},
	{name: "varsubsetneq;", cp1: '\U0000228a', cp2: '\U0000fe00', hasCP2: true},
	{name: "varsubsetneqq;", cp1: '\U00002acb', cp2: '\U0000fe00', hasCP2: true},
	{name: "varsupsetneq;", cp1: '\U0000228b', cp2: '\U0000fe00', hasCP2: true},
	{name: "varsupsetneqq;", cp1: '\U00002acc', cp2: '\U0000fe00', hasCP2: true},
	{name: "vartheta;", cp1: '\U000003d1'},
	{name: "vartriangleleft;", cp1: '\U000022b2'},
	{name: "vartriangleright;", cp1: '\U000022b3'},
	{name: "vcy;", cp1: '\U00000432'},
	{name: "vdash;", cp1: '\U000022a2'},
	{name: "vee;", cp1: '\U00002228'},
	{name: "veebar;", cp1: '\U000022bb'},
	{name: "veeeq;", cp1: '\U0000225a'},
	{name: "vellip;", cp1: '\U000022ee'},
	{name: "verbar;", cp1: '|'},
	{name: "vert;", cp1: '|'},
	{name: "vfr;", cp1: '\U0001d533'},
	{name: "vltri;", cp1: '\U000022b2'},
	{name: "vnsub;", cp1: '\U00002282', cp2: '\U000020d2', hasCP2: true},
	{name: "vnsup;", cp1: '\U00002283', cp2: '\U000020d2', hasCP2: true},
	{name: "vopf;", cp1: '\U0001d567'},
	{name: "vprop;", cp1: '\U0000221d'},
	{name: "vrtri;", cp1: '\U000022b3'},
	{name: "vscr;", cp1: '\U0001d4cb'},
	{name: "vsubnE;", cp1: '\U00002acb', cp2: '\U0000fe00', hasCP2: true},
	{name: "vsubne;", cp1: '\U0000228a', cp2: '\U0000fe00', hasCP2: true},
	{name: "vsupnE;", cp1: '\U00002acc', cp2: '\U0000fe00', hasCP2: true},
	{name: "vsupne;", cp1: '\U0000228b', cp2: '\U0000fe00', hasCP2: true},
	{name: "vzigzag;", cp1: '\U0000299a'},
	{name: "wcirc;", cp1: '\U00000175'},
	{name: "wedbar;", cp1: '\U00002a5f'},
	{name: "wedge;", cp1: '\U00002227'},
	{name: "wedgeq;", cp1: '\U00002259'},
	{name: "weierp;", cp1: '\U00002118'},
	{name: "wfr;", cp1: '\U0001d534'},
	{name: "wopf;", cp1: '\U0001d568'},
	{name: "wp;", cp1: '\U00002118'},
	{name: "wr;", cp1: '\U00002240'},
	{name: "wreath;", cp1: '\U00002240'},
	{name: "wscr;", cp1: '\U0001d4cc'},
	{name: "xcap;", cp1: '\U000022c2'},
	{name: "xcirc;", cp1: '\U000025ef'},
	{name: "xcup;", cp1: '\U000022c3'},
	{name: "xdtri;", cp1: '\U000025bd'},
	{name: "xfr;", cp1: '\U0001d535'},
	{name: "xhArr;", cp1: '\U000027fa'},
	{name: "xharr;", cp1: '\U000027f7'},
	{name: "xi;", cp1: '\U000003be'},
	{name: "xlArr;", cp1: '\U000027f8'},
	{name: "xlarr;", cp1: '\U000027f5'},
	{name: "xmap;", cp1: '\U000027fc'},
	{name: "xnis;", cp1: '\U000022fb'},
	{name: "xodot;", cp1: '\U00002a00'},
	{name: "xopf;", cp1: '\U0001d569'},
	{name: "xoplus;", cp1: '\U00002a01'},
	{name: "xotime;", cp1: '\U00002a02'},
	{name: "xrArr;", cp1: '\U000027f9'},
	{name: "xrarr;", cp1: '\U000027f6'},
	{name: "xscr;", cp1: '\U0001d4cd'},
	{name: "xsqcup;", cp1: '\U00002a06'},
	{name: "xuplus;", cp1: '\U00002a04'},
	{name: "xutri;", cp1: '\U000025b3'},
	{name: "xvee;", cp1: '\U000022c1'},
	{name: "xwedge;", cp1: '\U000022c0'},
	{name: "yacute", cp1: '\U000000fd'},
	{name: "yacute;", cp1: '\U000000fd'},
	{name: "yacy;", cp1: '\U0000044f'},
	{name: "ycirc;", cp1: '\U00000177'},
	{name: "ycy;", cp1: '\U0000044b'},
	{name: "yen", cp1: '\U000000a5'},
	{name: "yen;", cp1: '\U000000a5'},
	{name: "yfr;", cp1: '\U0001d536'},
	{name: "yicy;", cp1: '\U00000457'},
	{name: "yopf;", cp1: '\U0001d56a'},
	{name: "yscr;", cp1: '\U0001d4ce'},
	{name: "yucy;", cp1: '\U0000044e'},
	{name: "yuml", cp1: '\U000000ff'},
	{name: "yuml;", cp1: '\U000000ff'},
	{name: "zacute;", cp1: '\U0000017a'},
	{name: "zcaron;", cp1: '\U0000017e'},
	{name: "zcy;", cp1: '\U00000437'},
	{name: "zdot;", cp1: '\U0000017c'},
	{name: "zeetrf;", cp1: '\U00002128'},
	{name: "zeta;", cp1: '\U000003b6'},
	{name: "zfr;", cp1: '\U0001d537'},
	{name: "zhcy;", cp1: '\U00000436'},
	{name: "zigrarr;", cp1: '\U000021dd'},
	{name: "zopf;", cp1: '\U0001d56b'},
	{name: "zscr;", cp1: '\U0001d4cf'},
	{name: "zwj;", cp1: '\U0000200d'},
	{name: "zwnj;", cp1: '\U0000200c'},
}
