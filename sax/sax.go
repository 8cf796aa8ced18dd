package sax

func New() *SAX2 {
	return &SAX2{}
}

func (s *SAX2) StartDocument(ctx Context) error {
	if h := s.StartDocumentHandler; h != nil {
		return h(ctx)
	}
	return nil
}

func (s *SAX2) EndDocument(ctx Context) error {
	if h := s.EndDocumentHandler; h != nil {
		return h(ctx)
	}
	return nil
}

func (s *SAX2) Characters(ctx Context, content []byte) error {
	if h := s.CharactersHandler; h != nil {
		return h(ctx, content)
	}
	return nil
}

func (s *SAX2) CDataBlock(ctx Context, content []byte) error {
	if h := s.CDataBlockHandler; h != nil {
		return h(ctx, content)
	}
	return nil
}

func (s *SAX2) Comment(ctx Context, content []byte) error {
	if h := s.CommentHandler; h != nil {
		return h(ctx, content)
	}
	return nil
}

func (s *SAX2) ProcessingInstruction(ctx Context, content []byte) error {
	if h := s.ProcessingInstructionHandler; h != nil {
		return h(ctx, content)
	}
	return nil
}

func (s *SAX2) StartElement(ctx Context, elem StartTag) error {
	if h := s.StartElementHandler; h != nil {
		return h(ctx, elem)
	}
	return nil
}

func (s *SAX2) EndElement(ctx Context, name string) error {
	if h := s.EndElementHandler; h != nil {
		return h(ctx, name)
	}
	return nil
}
