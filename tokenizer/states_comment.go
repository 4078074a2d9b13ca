package tokenizer

func (t *Tokenizer) stepBogusComment(r rune) {
	switch r {
	case '>':
		t.state = DataState
		t.emitComment()
	case 0:
		t.errorf("unexpected-null-character")
		t.commentData = append(t.commentData, '�')
	default:
		t.commentData = append(t.commentData, r)
	}
}

// runePrefixMatch reports whether buf is a prefix of target (optionally
// ASCII case-folded), and whether it already equals target in full.
func runePrefixMatch(buf []rune, target string, fold bool) (matched, complete bool) {
	tr := []rune(target)
	if len(buf) > len(tr) {
		return false, false
	}
	for i, c := range buf {
		tc := tr[i]
		if fold {
			c, tc = toLower(c), toLower(tc)
		}
		if c != tc {
			return false, false
		}
	}
	return true, len(buf) == len(tr)
}

// stepMarkupDeclarationOpen implements the "<!" lookahead of spec §4.4: the
// next few characters are matched, greedily and incrementally since input
// arrives one code point at a time, against "--", "DOCTYPE" and "[CDATA[".
func (t *Tokenizer) stepMarkupDeclarationOpen(r rune) {
	t.mdBuf = append(t.mdBuf, r)

	if ok, complete := runePrefixMatch(t.mdBuf, "--", false); ok {
		if complete {
			t.mdBuf = nil
			t.commentData = nil
			t.state = CommentStartState
		}
		return
	}
	if ok, complete := runePrefixMatch(t.mdBuf, "DOCTYPE", true); ok {
		if complete {
			t.mdBuf = nil
			t.state = DoctypeState
		}
		return
	}
	if t.allowCDATA {
		if ok, complete := runePrefixMatch(t.mdBuf, "[CDATA[", false); ok {
			if complete {
				t.mdBuf = nil
				t.state = CDATASectionState
			}
			return
		}
	}
	t.errorf("incorrectly-opened-comment")
	buf := t.mdBuf
	t.mdBuf = nil
	t.commentData = nil
	t.state = BogusCommentState
	for _, c := range buf {
		t.stepBogusComment(c)
	}
}

func (t *Tokenizer) stepCommentStart(r rune) {
	switch r {
	case '-':
		t.state = CommentStartDashState
	case '>':
		t.errorf("abrupt-closing-of-empty-comment")
		t.state = DataState
		t.emitComment()
	default:
		t.reconsumeIn(CommentState)
	}
}

func (t *Tokenizer) stepCommentStartDash(r rune) {
	switch r {
	case '-':
		t.state = CommentEndState
	case '>':
		t.errorf("abrupt-closing-of-empty-comment")
		t.state = DataState
		t.emitComment()
	default:
		t.commentData = append(t.commentData, '-')
		t.reconsumeIn(CommentState)
	}
}

func (t *Tokenizer) stepComment(r rune) {
	switch r {
	case '<':
		t.commentData = append(t.commentData, r)
		t.state = CommentLessThanSignState
	case '-':
		t.state = CommentEndDashState
	case 0:
		t.errorf("unexpected-null-character")
		t.commentData = append(t.commentData, '�')
	default:
		t.commentData = append(t.commentData, r)
	}
}

func (t *Tokenizer) stepCommentLessThanSign(r rune) {
	switch r {
	case '!':
		t.commentData = append(t.commentData, r)
		t.state = CommentLessThanSignBangState
	case '<':
		t.commentData = append(t.commentData, r)
	default:
		t.reconsumeIn(CommentState)
	}
}

func (t *Tokenizer) stepCommentLessThanSignBang(r rune) {
	if r == '-' {
		t.state = CommentLessThanSignBangDashState
		return
	}
	t.reconsumeIn(CommentState)
}

func (t *Tokenizer) stepCommentLessThanSignBangDash(r rune) {
	if r == '-' {
		t.state = CommentLessThanSignBangDashDashState
		return
	}
	t.reconsumeIn(CommentEndDashState)
}

func (t *Tokenizer) stepCommentLessThanSignBangDashDash(r rune) {
	switch r {
	case '>':
		t.reconsumeIn(CommentEndState)
	default:
		t.errorf("nested-comment")
		t.reconsumeIn(CommentEndState)
	}
}

func (t *Tokenizer) stepCommentEndDash(r rune) {
	if r == '-' {
		t.state = CommentEndState
		return
	}
	t.commentData = append(t.commentData, '-')
	t.reconsumeIn(CommentState)
}

func (t *Tokenizer) stepCommentEnd(r rune) {
	switch r {
	case '>':
		t.state = DataState
		t.emitComment()
	case '!':
		t.state = CommentEndBangState
	case '-':
		t.commentData = append(t.commentData, '-')
	default:
		t.commentData = append(t.commentData, '-', '-')
		t.reconsumeIn(CommentState)
	}
}

func (t *Tokenizer) stepCommentEndBang(r rune) {
	switch r {
	case '-':
		t.commentData = append(t.commentData, '-', '-', '!')
		t.state = CommentEndDashState
	case '>':
		t.errorf("incorrectly-closed-comment")
		t.state = DataState
		t.emitComment()
	default:
		t.commentData = append(t.commentData, '-', '-', '!')
		t.reconsumeIn(CommentState)
	}
}
