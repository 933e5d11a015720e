package editor

import (
	"fmt"
	"log"
	"time"
)

// save writes the document to its path. Failures are recoverable: they
// surface on the message bar and the dirty flag stays set.
func (e *Editor) save() {
	n, err := e.doc.Save()
	if err != nil {
		log.Printf("save failed: %v", err)
		e.setStatusMessage("Can't save! %v", err)
		return
	}
	log.Printf("saved %d bytes to %s", n, e.doc.Path())
	e.setStatusMessage("%d bytes written to %s", n, e.doc.Path())
}

func (e *Editor) setStatusMessage(format string, args ...any) {
	e.statusMessage = fmt.Sprintf(format, args...)
	e.statusTime = time.Now()
}
