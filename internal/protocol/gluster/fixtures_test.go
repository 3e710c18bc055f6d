package gluster

// Captured glusterd/quotad traffic used across the tests in this package.

// listFriendsCall is the record payload the gluster CLI sends for
// "gluster peer status" with a default v2 credential and xid 1.
var listFriendsCall = []byte{
	0x00, 0x00, 0x00, 0x01, // xid
	0x00, 0x00, 0x00, 0x00, // CALL
	0x00, 0x00, 0x00, 0x02, // rpc version
	0x00, 0x12, 0xe5, 0xbf, // program 1238463
	0x00, 0x00, 0x00, 0x02, // program version
	0x00, 0x00, 0x00, 0x03, // GLUSTER_CLI_LIST_FRIENDS
	0x00, 0x05, 0xf3, 0x97, // cred flavor
	0x00, 0x00, 0x00, 0x18, // cred length
	0x00, 0x00, 0x00, 0x00, // pid
	0x00, 0x00, 0x00, 0x00, // uid
	0x00, 0x00, 0x00, 0x00, // gid
	0x00, 0x00, 0x00, 0x00, // groups
	0x00, 0x00, 0x00, 0x04, // lock owner length
	0x00, 0x00, 0x00, 0x00, // lock owner
	0x00, 0x00, 0x00, 0x00, // verf flavor
	0x00, 0x00, 0x00, 0x00, // verf length
	0x00, 0x00, 0x00, 0x02, // flags
	0x00, 0x00, 0x00, 0x00, // dict length
}

// listFriendsReply is glusterd's answer to listFriendsCall on a single
// node cluster.
var listFriendsReply = []byte{
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x8d,
	0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x05, 0x00, 0x00, 0x00, 0x02, 0x63, 0x6f,
	0x75, 0x6e, 0x74, 0x00, 0x31, 0x00, 0x00, 0x00, 0x00, 0x11, 0x00, 0x00, 0x00, 0x02,
	0x66, 0x72, 0x69, 0x65, 0x6e, 0x64, 0x36, 0x2e, 0x63, 0x6f, 0x6e, 0x6e, 0x65, 0x63,
	0x74, 0x65, 0x64, 0x00, 0x31, 0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 0x0a,
	0x66, 0x72, 0x69, 0x65, 0x6e, 0x64, 0x31, 0x2e, 0x68, 0x6f, 0x73, 0x74, 0x6e, 0x61,
	0x6d, 0x65, 0x00, 0x6c, 0x6f, 0x63, 0x61, 0x6c, 0x68, 0x6f, 0x73, 0x74, 0x00, 0x00,
	0x00, 0x00, 0x0c, 0x00, 0x00, 0x00, 0x25, 0x66, 0x72, 0x69, 0x65, 0x6e, 0x64, 0x31,
	0x2e, 0x75, 0x75, 0x69, 0x64, 0x00, 0x34, 0x30, 0x37, 0x32, 0x36, 0x62, 0x38, 0x30,
	0x2d, 0x62, 0x63, 0x30, 0x35, 0x2d, 0x34, 0x31, 0x66, 0x33, 0x2d, 0x62, 0x61, 0x39,
	0x37, 0x2d, 0x35, 0x30, 0x34, 0x63, 0x65, 0x33, 0x33, 0x30, 0x31, 0x65, 0x63, 0x65,
	0x00, 0x00, 0x00, 0x00,
}

// quotaGetlimitReply is quotad's answer to a getlimit on the root of a
// volume using 5268045824 bytes in 1 file and 4 directories.
var quotaGetlimitReply = []byte{
	0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 117, 0, 0, 0, 0, 0, 0, 0, 228, 0, 0, 0, 6, 0, 0, 0, 4, 0, 0, 0, 2, 116, 121, 112,
	101, 0, 53, 0, 0, 0, 0, 28, 0, 0, 0, 24, 116, 114, 117, 115, 116, 101, 100, 46, 103,
	108, 117, 115, 116, 101, 114, 102, 115, 46, 113, 117, 111, 116, 97, 46, 115, 105, 122,
	101, 0, 0, 0, 0, 1, 58, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 4, 0, 0,
	0, 23, 0, 0, 0, 2, 103, 108, 117, 115, 116, 101, 114, 102, 115, 46, 97, 110, 99, 101,
	115, 116, 114, 121, 46, 112, 97, 116, 104, 0, 47, 0, 0, 0, 0, 21, 0, 0, 0, 16, 116,
	114, 117, 115, 116, 101, 100, 46, 103, 108, 117, 115, 116, 101, 114, 102, 115, 46, 100,
	104, 116, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 255, 255, 255, 255, 0, 0, 0, 23, 0, 0,
	0, 2, 103, 108, 117, 115, 116, 101, 114, 102, 115, 46, 101, 110, 116, 114, 121, 108,
	107, 45, 99, 111, 117, 110, 116, 0, 48, 0, 0, 0, 0, 23, 0, 0, 0, 2, 103, 108, 117, 115,
	116, 101, 114, 102, 115, 46, 105, 110, 111, 100, 101, 108, 107, 45, 99, 111, 117, 110,
	116, 0, 48, 0,
}
