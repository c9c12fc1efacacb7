// Package trace records presskit frames to a compact binary file and reads
// them back.
//
// A Recorder is a presskit.FrameObserver: attach it to a scene and every frame
// in which systems ran is written as one CBOR record carrying the hand
// fingertips, the button states after finger input, and the events the
// dispatch system delivered.
//
//	rec, err := trace.Create("run.ptrace")
//	if err != nil {
//	    return err
//	}
//	defer rec.Close()
//	scene.AddObserver(rec)
//
// # File Format
//
// A trace is a header record (session UUID, start time, format version)
// followed by frame records, each encoded with integer keys. Reader iterates
// them; Replay queues the recorded fingertip of one hand back onto a
// presskit.Hand so a run can be reproduced frame for frame.
package trace
