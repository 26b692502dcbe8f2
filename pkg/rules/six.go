package rules

// GENERATED VIA generate-six-info
// Using six==1.11.0

// SixRemovals are six.moves imports that shadow builtins on Python 3.
var SixRemovals = []string{
	"from six.moves import filter",
	"from six.moves import input",
	"from six.moves import map",
	"from six.moves import range",
	"from six.moves import zip",
}

// SixRenames are replace directives (`orig.mod=new.mod[:attr]`) rewriting
// six.moves modules to their Python 3 locations.
var SixRenames = []string{
	"six.moves.BaseHTTPServer=http.server",
	"six.moves.CGIHTTPServer=http.server",
	"six.moves.SimpleHTTPServer=http.server",
	"six.moves._dummy_thread=_dummy_thread",
	"six.moves._thread=_thread",
	"six.moves.builtins=builtins",
	"six.moves.cPickle=pickle",
	"six.moves.configparser=configparser",
	"six.moves.copyreg=copyreg",
	"six.moves.dbm_gnu=dbm.gnu",
	"six.moves.email_mime_base=email.mime.base",
	"six.moves.email_mime_image=email.mime.image",
	"six.moves.email_mime_multipart=email.mime.multipart",
	"six.moves.email_mime_nonmultipart=email.mime.nonmultipart",
	"six.moves.email_mime_text=email.mime.text",
	"six.moves.html_entities=html.entities",
	"six.moves.html_parser=html.parser",
	"six.moves.http_client=http.client",
	"six.moves.http_cookiejar=http.cookiejar",
	"six.moves.http_cookies=http.cookies",
	"six.moves.queue=queue",
	"six.moves.reprlib=reprlib",
	"six.moves.socketserver=socketserver",
	"six.moves.tkinter=tkinter",
	"six.moves.tkinter_colorchooser=tkinter.colorchooser",
	"six.moves.tkinter_commondialog=tkinter.commondialog",
	"six.moves.tkinter_constants=tkinter.constants",
	"six.moves.tkinter_dialog=tkinter.dialog",
	"six.moves.tkinter_dnd=tkinter.dnd",
	"six.moves.tkinter_filedialog=tkinter.filedialog",
	"six.moves.tkinter_font=tkinter.font",
	"six.moves.tkinter_messagebox=tkinter.messagebox",
	"six.moves.tkinter_scrolledtext=tkinter.scrolledtext",
	"six.moves.tkinter_simpledialog=tkinter.simpledialog",
	"six.moves.tkinter_tix=tkinter.tix",
	"six.moves.tkinter_tkfiledialog=tkinter.filedialog",
	"six.moves.tkinter_tksimpledialog=tkinter.simpledialog",
	"six.moves.tkinter_ttk=tkinter.ttk",
	"six.moves.urllib.error=urllib.error",
	"six.moves.urllib.parse=urllib.parse",
	"six.moves.urllib.request=urllib.request",
	"six.moves.urllib.response=urllib.response",
	"six.moves.urllib.robotparser=urllib.robotparser",
	"six.moves.urllib_error=urllib.error",
	"six.moves.urllib_parse=urllib.parse",
	"six.moves.urllib_robotparser=urllib.robotparser",
	"six.moves.xmlrpc_client=xmlrpc.client",
	"six.moves.xmlrpc_server=xmlrpc.server",
	"six.moves=collections:UserDict",
	"six.moves=collections:UserList",
	"six.moves=collections:UserString",
	"six.moves=functools:reduce",
	"six.moves=io:StringIO",
	"six.moves=itertools:filterfalse",
	"six.moves=itertools:zip_longest",
	"six.moves=os:getcwd",
	"six.moves=os:getcwdb",
	"six.moves=subprocess:getoutput",
	"six.moves=sys:intern",
	"six=functools:wraps",
	"six=io:BytesIO",
	"six=io:StringIO",
}

// END GENERATED
