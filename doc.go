/*
Package nbm defines the note block music project document: layers of pitched
notes on an integer tick timeline, the fixed instrument catalog, and the
NoteTrigger interface through which notes are handed to an audio back-end.

The mutable editing state (transport, selection, edit operations) lives in
package composer.
*/
package nbm
